package decision

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tgoodington/Ancient-Order-sub002/model"
)

// LegalityEnv is the environment gate conditions are evaluated against.
type LegalityEnv struct {
	Energy              int
	GroupActionsEnabled bool
}

// Gate decides whether an action kind may be considered at all this round.
// Target availability is checked separately; a gate only says whether the
// kind is on the table.
type Gate struct {
	Kind         model.ActionKind
	ConditionSrc string // expr source
	program      *vm.Program
}

// DefaultGates returns the gate set every evaluator starts with.
func DefaultGates() []Gate {
	return []Gate{
		{Kind: model.ActionAttack, ConditionSrc: `true`},
		{Kind: model.ActionDefend, ConditionSrc: `true`},
		{Kind: model.ActionEvade, ConditionSrc: `true`},
		{Kind: model.ActionSpecial, ConditionSrc: `Energy >= 1`},
		{Kind: model.ActionGroup, ConditionSrc: `GroupActionsEnabled`},
	}
}

func compileGates(gates []Gate) ([]Gate, error) {
	out := make([]Gate, len(gates))
	for i, g := range gates {
		if !g.Kind.Valid() {
			return nil, fmt.Errorf("gate %d: unknown action %q", i, g.Kind)
		}
		prog, err := expr.Compile(g.ConditionSrc, expr.Env(LegalityEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile gate %q: %w", g.Kind, err)
		}
		g.program = prog
		out[i] = g
	}
	return out, nil
}

// legalKinds runs every gate and returns the kinds that passed, in gate order.
// A gate that fails to run closes its kind rather than aborting the evaluation.
func legalKinds(gates []Gate, env LegalityEnv) []model.ActionKind {
	kinds := make([]model.ActionKind, 0, len(gates))
	for _, g := range gates {
		result, err := vm.Run(g.program, env)
		if err != nil {
			slog.Warn("gate condition error", "kind", g.Kind, "error", err)
			continue
		}
		if ok, _ := result.(bool); ok {
			kinds = append(kinds, g.Kind)
		}
	}
	return kinds
}
