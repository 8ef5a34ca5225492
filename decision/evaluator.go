// Package decision chooses one committed action for a non-player combatant.
//
// Every call is self-contained: a perception snapshot is built, legal
// (kind, target) candidates are enumerated and scored as
// base + RankCoefficient(rank) * Σ weight*factor, and the best candidate wins,
// with exact ties resolved by BreakTie. Nothing survives between calls, so an
// Evaluator may be shared across goroutines.
package decision

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/tgoodington/Ancient-Order-sub002/model"
	"github.com/tgoodington/Ancient-Order-sub002/perception"
)

// Candidate is one scored (kind, target) option inside a single evaluation.
type Candidate struct {
	Kind   model.ActionKind
	Target *Target // nil for untargeted kinds
	Score  float64
	// Breakdown holds each factor's weighted contribution before the rank
	// coefficient is applied.
	Breakdown map[string]float64
}

func (c Candidate) TargetID() string {
	if c.Target == nil {
		return ""
	}
	return c.Target.ID
}

// Evaluator owns the profile registry, factor list and compiled gates.
type Evaluator struct {
	registry *Registry
	factors  []Factor
	gates    []Gate
}

// NewEvaluator compiles the default gates and binds the registry.
func NewEvaluator(registry *Registry) (*Evaluator, error) {
	return NewEvaluatorWithGates(registry, DefaultGates())
}

// NewEvaluatorWithGates is NewEvaluator with a caller-supplied gate set.
func NewEvaluatorWithGates(registry *Registry, gates []Gate) (*Evaluator, error) {
	if registry == nil {
		return nil, fmt.Errorf("nil profile registry")
	}
	compiled, err := compileGates(gates)
	if err != nil {
		return nil, err
	}
	return &Evaluator{registry: registry, factors: Factors(), gates: compiled}, nil
}

func (e *Evaluator) Registry() *Registry { return e.registry }

var defaultEvaluator = sync.OnceValues(func() (*Evaluator, error) {
	registry, err := NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	return NewEvaluator(registry)
})

// Evaluate decides with the built-in profiles.
func Evaluate(actor model.Combatant, state model.BattleState, cfg Config) (model.CommittedAction, error) {
	e, err := defaultEvaluator()
	if err != nil {
		return model.CommittedAction{}, err
	}
	return e.Evaluate(actor, state, cfg)
}

// Evaluate returns the action actor commits to this round. The only error is
// an archetype without a registered profile.
func (e *Evaluator) Evaluate(actor model.Combatant, state model.BattleState, cfg Config) (model.CommittedAction, error) {
	profile, cands, err := e.candidates(actor, state, cfg)
	if err != nil {
		return model.CommittedAction{}, err
	}

	winner, ok := selectWinner(cands, profile.Affinity)
	if !ok {
		// evade needs no target, so this is unreachable with the default
		// gates; still never fail the round over it
		slog.Warn("no candidates, falling back to evade", "actor", actor.ID, "archetype", profile.ID)
		return model.CommittedAction{CombatantID: actor.ID, Kind: model.ActionEvade}, nil
	}

	action := model.CommittedAction{
		CombatantID: actor.ID,
		Kind:        winner.Kind,
		TargetID:    winner.TargetID(),
	}
	if winner.Kind == model.ActionSpecial {
		// spend everything
		action.EnergySpent = actor.Energy
	}

	slog.Debug("combat decision",
		"actor", actor.ID,
		"archetype", profile.ID,
		"round", state.Round,
		"kind", action.Kind,
		"target", action.TargetID,
		"score", winner.Score,
		"candidates", len(cands),
	)
	return action, nil
}

// Explain returns every scored candidate for actor in enumeration order,
// without picking a winner.
func (e *Evaluator) Explain(actor model.Combatant, state model.BattleState, cfg Config) ([]Candidate, error) {
	_, cands, err := e.candidates(actor, state, cfg)
	return cands, err
}

func (e *Evaluator) candidates(actor model.Combatant, state model.BattleState, cfg Config) (Profile, []Candidate, error) {
	profile, err := e.registry.Get(actor.ArchetypeID)
	if err != nil {
		return Profile{}, nil, fmt.Errorf("evaluate %s: %w", actor.ID, err)
	}

	p := perception.Build(actor, state)
	coef := RankCoefficient(actor.Rank)
	if weakest, ok := p.WeakestEnemy(); ok {
		slog.Debug("perceived",
			"actor", actor.ID,
			"weakest", weakest.ID,
			"weakestHealth", weakest.HealthFraction,
			"lowestAlly", p.LowestAllyHealth(),
			"coef", coef,
		)
	}

	kinds := legalKinds(e.gates, LegalityEnv{
		Energy:              actor.Energy,
		GroupActionsEnabled: cfg.GroupActionsEnabled,
	})

	var cands []Candidate
	for _, kind := range kinds {
		for _, target := range targetsFor(kind, p) {
			cands = append(cands, e.score(profile, p, kind, target, coef))
		}
	}
	return profile, cands, nil
}

// targetsFor lists the legal targets of a kind. Untargeted kinds yield a
// single nil target; an empty result drops the kind.
func targetsFor(kind model.ActionKind, p perception.Snapshot) []*Target {
	switch kind {
	case model.ActionAttack, model.ActionSpecial:
		enemies := p.LivingEnemies()
		out := make([]*Target, 0, len(enemies))
		for _, en := range enemies {
			out = append(out, &Target{ID: en.ID, Side: SideEnemy, HealthFraction: en.HealthFraction})
		}
		return out
	case model.ActionDefend:
		allies := p.LivingAllies()
		out := make([]*Target, 0, len(allies))
		for _, a := range allies {
			out = append(out, &Target{ID: a.ID, Side: SideAlly, HealthFraction: a.HealthFraction})
		}
		return out
	default:
		return []*Target{nil}
	}
}

func (e *Evaluator) score(profile Profile, p perception.Snapshot, kind model.ActionKind, target *Target, coef float64) Candidate {
	breakdown := make(map[string]float64, len(e.factors))
	contributions := make([]float64, 0, len(e.factors))
	for _, f := range e.factors {
		v := profile.Weight(f.Name()) * f.Score(p, target)[kind]
		breakdown[f.Name()] = v
		contributions = append(contributions, v)
	}
	return Candidate{
		Kind:      kind,
		Target:    target,
		Score:     profile.BaseScore(kind) + sumContributions(contributions)*coef,
		Breakdown: breakdown,
	}
}

// sumContributions adds in sorted order so the total does not depend on the
// order factors were evaluated in.
func sumContributions(vs []float64) float64 {
	sort.Float64s(vs)
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum
}
