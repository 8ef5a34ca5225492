package agent

import (
	"fmt"
	"sort"

	"github.com/tgoodington/Ancient-Order-sub002/decision"
	"github.com/tgoodington/Ancient-Order-sub002/model"
)

// EventKind identifies a notable change between two consecutive decide
// requests for the same battle.
type EventKind string

const (
	EventKnockout        EventKind = "knockout"
	EventRevival         EventKind = "revival"
	EventPhaseTransition EventKind = "phase_transition"
	EventStatusChange    EventKind = "status_change"
	EventPartyWiped      EventKind = "party_wiped"
)

type Event struct {
	Kind   EventKind
	Round  int
	Detail string
}

// stateSnapshot captures the diffable fields of a battle state.
type stateSnapshot struct {
	battleID   string
	round      int
	phase      decision.RoundPhase
	status     string
	knockedOut map[string]bool // id → downed, both parties
	players    int             // living
	enemies    int             // living
}

func takeSnapshot(state model.BattleState) stateSnapshot {
	snap := stateSnapshot{
		battleID:   state.ID,
		round:      state.Round,
		phase:      decision.PhaseOf(state.Round),
		status:     state.Status,
		knockedOut: make(map[string]bool, len(state.PlayerParty)+len(state.EnemyParty)),
		players:    countLiving(state.PlayerParty),
		enemies:    countLiving(state.EnemyParty),
	}
	for _, c := range state.PlayerParty {
		snap.knockedOut[c.ID] = c.KnockedOut
	}
	for _, c := range state.EnemyParty {
		snap.knockedOut[c.ID] = c.KnockedOut
	}
	return snap
}

// detectEvents compares state against the previous snapshot. Returns nil if
// prev is nil (first request of a battle).
func detectEvents(state model.BattleState, prev *stateSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event
	cur := takeSnapshot(state)

	// sorted so log output is stable
	ids := make([]string, 0, len(cur.knockedOut))
	for id := range cur.knockedOut {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		was, seen := prev.knockedOut[id]
		if !seen {
			continue
		}
		now := cur.knockedOut[id]
		switch {
		case now && !was:
			events = append(events, Event{
				Kind:   EventKnockout,
				Round:  state.Round,
				Detail: fmt.Sprintf("%s knocked out", id),
			})
		case was && !now:
			events = append(events, Event{
				Kind:   EventRevival,
				Round:  state.Round,
				Detail: fmt.Sprintf("%s back in the fight", id),
			})
		}
	}

	if prev.phase != cur.phase {
		events = append(events, Event{
			Kind:   EventPhaseTransition,
			Round:  state.Round,
			Detail: fmt.Sprintf("Phase transition: %s → %s", prev.phase, cur.phase),
		})
	}

	if prev.status != cur.status {
		events = append(events, Event{
			Kind:   EventStatusChange,
			Round:  state.Round,
			Detail: fmt.Sprintf("Status: %q → %q", prev.status, cur.status),
		})
	}

	if prev.players > 0 && cur.players == 0 {
		events = append(events, Event{Kind: EventPartyWiped, Round: state.Round, Detail: "player party wiped"})
	}
	if prev.enemies > 0 && cur.enemies == 0 {
		events = append(events, Event{Kind: EventPartyWiped, Round: state.Round, Detail: "enemy party wiped"})
	}

	return events
}
