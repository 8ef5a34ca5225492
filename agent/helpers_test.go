package agent

import (
	"testing"

	"github.com/tgoodington/Ancient-Order-sub002/decision"
	"github.com/tgoodington/Ancient-Order-sub002/model"
)

func combatant(id, archetype string, stamina int) model.Combatant {
	return model.Combatant{
		ID:          id,
		Name:        id,
		ArchetypeID: archetype,
		Rank:        5,
		Stamina:     stamina,
		MaxStamina:  100,
		Energy:      1,
		MaxEnergy:   3,
		Speed:       10,
		Affinity:    model.AffinityFire,
	}
}

// skirmish is a three-on-three battle in round 4 with one downed enemy.
func skirmish() model.BattleState {
	downed := combatant("e3", "trickster", 0)
	downed.KnockedOut = true
	return model.BattleState{
		ID:    "b1",
		Round: 4,
		Phase: "decide",
		PlayerParty: []model.Combatant{
			combatant("hero", "vanguard", 80),
			combatant("mage", "trickster", 30),
			combatant("tank", "warden", 100),
		},
		EnemyParty: []model.Combatant{
			combatant("e1", "vanguard", 60),
			combatant("e2", "warden", 90),
			downed,
		},
	}
}

func testEvaluator(t *testing.T) *decision.Evaluator {
	t.Helper()
	registry, err := decision.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error: %v", err)
	}
	ev, err := decision.NewEvaluator(registry)
	if err != nil {
		t.Fatalf("NewEvaluator() error: %v", err)
	}
	return ev
}
