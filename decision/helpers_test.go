package decision

import (
	"testing"

	"github.com/tgoodington/Ancient-Order-sub002/model"
)

func fighter(id, archetype string, stamina int, rank float64) model.Combatant {
	return model.Combatant{
		ID:          id,
		Name:        id,
		ArchetypeID: archetype,
		Rank:        rank,
		Stamina:     stamina,
		MaxStamina:  100,
		MaxEnergy:   5,
		Speed:       10,
		Affinity:    model.AffinityFire,
	}
}

func downed(c model.Combatant) model.Combatant {
	c.Stamina = 0
	c.KnockedOut = true
	return c
}

func defaultEvaluatorForTest(t *testing.T) *Evaluator {
	t.Helper()
	registry, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry() failed: %v", err)
	}
	e, err := NewEvaluator(registry)
	if err != nil {
		t.Fatalf("NewEvaluator() failed: %v", err)
	}
	return e
}

// flatProfile scores every kind the same and ignores every factor, so each
// legal candidate ties and the tie-break policy alone decides.
func flatProfile(id string, affinity model.Affinity) Profile {
	base := make(map[model.ActionKind]float64, len(model.ActionKinds))
	for _, k := range model.ActionKinds {
		base[k] = 0.5
	}
	return Profile{ID: id, Name: id, Affinity: affinity, Base: base}
}
