package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tgoodington/Ancient-Order-sub002/decision"
	"github.com/tgoodington/Ancient-Order-sub002/model"
)

var (
	ErrActorNotFound   = errors.New("actor not in battle")
	ErrActorKnockedOut = errors.New("actor is knocked out")
)

// Result is the outcome for one requested actor. Exactly one of Action or
// Err is meaningful.
type Result struct {
	CombatantID string
	Action      model.CommittedAction
	Err         error
}

// Decider runs the evaluator for every AI combatant of a round.
type Decider struct {
	evaluator *decision.Evaluator
	workers   int
}

// NewDecider bounds concurrent evaluations to workers; zero or less means
// one per CPU.
func NewDecider(evaluator *decision.Evaluator, workers int) *Decider {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Decider{evaluator: evaluator, workers: workers}
}

// DecideRound evaluates each actor against the same state. Evaluations share
// nothing, so they run in parallel; results come back in actorIDs order.
// A failing actor does not stop the others. The returned error is only
// ctx's.
func (d *Decider) DecideRound(ctx context.Context, state model.BattleState, actorIDs []string, cfg decision.Config) ([]Result, error) {
	results := make([]Result, len(actorIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, id := range actorIDs {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.decideOne(state, id, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("decide round %d: %w", state.Round, err)
	}
	return results, nil
}

func (d *Decider) decideOne(state model.BattleState, id string, cfg decision.Config) Result {
	actor, ok := state.Find(id)
	if !ok {
		return Result{CombatantID: id, Err: fmt.Errorf("%s: %w", id, ErrActorNotFound)}
	}
	if actor.KnockedOut {
		return Result{CombatantID: id, Err: fmt.Errorf("%s: %w", id, ErrActorKnockedOut)}
	}

	action, err := d.evaluator.Evaluate(actor, state, cfg)
	if err != nil {
		slog.Warn("evaluation failed", "actor", id, "archetype", actor.ArchetypeID, "error", err)
		return Result{CombatantID: id, Err: err}
	}
	return Result{CombatantID: id, Action: action}
}
