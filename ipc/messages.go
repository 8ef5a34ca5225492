package ipc

import "github.com/tgoodington/Ancient-Order-sub002/model"

// Message types exchanged with the round orchestrator.
const (
	TypeHello   = "hello"
	TypeAck     = "ack"
	TypeDecide  = "decide"
	TypeActions = "actions"
	TypeError   = "error"
)

type HelloMessage struct {
	Orchestrator string `json:"orchestrator"`
	BattleID     string `json:"battleId,omitempty"`
}

type AckMessage struct {
	Status string `json:"status"`
}

// DecideRequest asks for one committed action per listed combatant. The
// orchestrator only lists combatants that are still standing.
type DecideRequest struct {
	State               model.BattleState `json:"state"`
	ActorIDs            []string          `json:"actorIds"`
	GroupActionsEnabled bool              `json:"groupActionsEnabled,omitempty"`
}

// ActionsMessage answers a DecideRequest. Actions keep request order; an
// actor that could not be decided appears in Failures instead.
type ActionsMessage struct {
	BattleID string                  `json:"battleId,omitempty"`
	Round    int                     `json:"round"`
	Actions  []model.CommittedAction `json:"actions"`
	Failures []Failure               `json:"failures,omitempty"`
}

type Failure struct {
	CombatantID string `json:"combatantId"`
	Error       string `json:"error"`
}

// ErrorMessage is sent back when a handler fails outright.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
