package model

// ActionKind is the kind of action a combatant commits to for a round.
type ActionKind string

const (
	ActionAttack  ActionKind = "attack"
	ActionDefend  ActionKind = "defend"
	ActionEvade   ActionKind = "evade"
	ActionSpecial ActionKind = "special" // spends energy segments
	ActionGroup   ActionKind = "group"   // team action, gated per call
)

// ActionKinds lists every action kind in declaration order.
var ActionKinds = []ActionKind{ActionAttack, ActionDefend, ActionEvade, ActionSpecial, ActionGroup}

func (k ActionKind) Valid() bool {
	for _, known := range ActionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// CommittedAction is the only artifact handed back to the round orchestrator.
// It joins the same queue as player-submitted actions.
type CommittedAction struct {
	CombatantID string     `json:"combatantId"`
	Kind        ActionKind `json:"kind"`
	TargetID    string     `json:"targetId,omitempty"`
	EnergySpent int        `json:"energySpent,omitempty"`
}

func (a CommittedAction) HasTarget() bool { return a.TargetID != "" }
