package agent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tgoodington/Ancient-Order-sub002/decision"
	"github.com/tgoodington/Ancient-Order-sub002/ipc"
	"github.com/tgoodington/Ancient-Order-sub002/model"
)

// Session owns the decision-making for a single orchestrator connection.
type Session struct {
	Orchestrator string
	BattleID     string

	ctx     context.Context
	decider *Decider

	mu   sync.Mutex
	prev *stateSnapshot
}

func New(ctx context.Context, decider *Decider) *Session {
	return &Session{ctx: ctx, decider: decider}
}

// HandleHello completes the handshake so the orchestrator knows the service is ready.
func (s *Session) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := env.Decode(&hello); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.Orchestrator = hello.Orchestrator
	s.BattleID = hello.BattleID
	s.prev = nil
	s.mu.Unlock()
	slog.Info("orchestrator identified", "orchestrator", hello.Orchestrator, "battle", hello.BattleID)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (s *Session) HandleDecide(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.DecideRequest
	if err := env.Decode(&req); err != nil {
		return nil, err
	}

	msg, err := s.Decide(req)
	if err != nil {
		return nil, err
	}

	out, err := ipc.NewEnvelope(ipc.TypeActions, msg)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Decide answers one round. It is HandleDecide without the envelope.
func (s *Session) Decide(req ipc.DecideRequest) (ipc.ActionsMessage, error) {
	state := req.State
	s.observe(state)

	slog.Info("decide requested",
		"battle", state.ID,
		"round", state.Round,
		"actors", len(req.ActorIDs),
		"players", countLiving(state.PlayerParty),
		"enemies", countLiving(state.EnemyParty),
	)

	results, err := s.decider.DecideRound(s.ctx, state, req.ActorIDs, decision.Config{
		GroupActionsEnabled: req.GroupActionsEnabled,
	})
	if err != nil {
		return ipc.ActionsMessage{}, err
	}

	msg := ipc.ActionsMessage{
		BattleID: state.ID,
		Round:    state.Round,
		Actions:  make([]model.CommittedAction, 0, len(results)),
	}
	for _, r := range results {
		if r.Err != nil {
			msg.Failures = append(msg.Failures, ipc.Failure{CombatantID: r.CombatantID, Error: r.Err.Error()})
			continue
		}
		msg.Actions = append(msg.Actions, r.Action)
	}
	if len(msg.Failures) > 0 {
		slog.Warn("round decided with failures", "round", state.Round, "failed", len(msg.Failures))
	}
	return msg, nil
}

// observe diffs state against the previous decide request and logs what changed.
func (s *Session) observe(state model.BattleState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prev != nil && s.prev.battleID != state.ID {
		// a new battle on the same connection starts a fresh baseline
		s.prev = nil
	}
	for _, e := range detectEvents(state, s.prev) {
		slog.Info("battle event", "kind", e.Kind, "round", e.Round, "detail", e.Detail)
	}
	snap := takeSnapshot(state)
	s.prev = &snap
}

func countLiving(party []model.Combatant) int {
	n := 0
	for _, c := range party {
		if c.Alive() {
			n++
		}
	}
	return n
}

