package decision

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tgoodington/Ancient-Order-sub002/model"
	"github.com/tgoodington/Ancient-Order-sub002/perception"
)

// snapshotWith builds a snapshot for a lone actor facing one enemy, with the
// given actor stamina, energy and round.
func snapshotWith(stamina, energy, round int) perception.Snapshot {
	actor := fighter("actor", "vanguard", stamina, 5)
	actor.Energy = energy
	state := model.BattleState{
		Round:       round,
		PlayerParty: []model.Combatant{actor},
		EnemyParty:  []model.Combatant{fighter("foe", "warden", 100, 5)},
	}
	return perception.Build(actor, state)
}

func TestSelfPreservationBrackets(t *testing.T) {
	tests := []struct {
		stamina int
		want    Scores
	}{
		{5, Scores{atk: -0.5, def: 0.2, eva: 0.8, spc: -0.3}},
		{24, Scores{atk: -0.5, def: 0.2, eva: 0.8, spc: -0.3}},
		{25, Scores{atk: -0.2, def: 0.3, eva: 0.4, grp: 0.1}},
		{49, Scores{atk: -0.2, def: 0.3, eva: 0.4, grp: 0.1}},
		{50, Scores{def: 0.1, eva: 0.1}},
		{75, Scores{atk: 0.2, eva: -0.2, spc: 0.1}},
		{100, Scores{atk: 0.2, eva: -0.2, spc: 0.1}},
	}
	for _, tc := range tests {
		got := selfPreservation(snapshotWith(tc.stamina, 0, 1), nil)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("selfPreservation(stamina=%d) mismatch (-want +got):\n%s", tc.stamina, diff)
		}
	}
}

func TestAllyProtectionBrackets(t *testing.T) {
	tests := []struct {
		allyStamina int
		want        Scores
	}{
		{10, Scores{atk: -0.3, def: 1.0, eva: -0.4, spc: -0.1, grp: 0.3}},
		{30, Scores{atk: -0.1, def: 0.5, eva: -0.2, grp: 0.2}},
		{50, Scores{def: -0.2}},
	}
	for _, tc := range tests {
		actor := fighter("actor", "warden", 100, 5)
		state := model.BattleState{
			PlayerParty: []model.Combatant{actor, fighter("ally", "vanguard", tc.allyStamina, 5)},
		}
		got := allyProtection(perception.Build(actor, state), nil)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("allyProtection(ally=%d) mismatch (-want +got):\n%s", tc.allyStamina, diff)
		}
	}

	// no living allies reads as a healthy team
	got := allyProtection(snapshotWith(100, 0, 1), nil)
	if diff := cmp.Diff(Scores{def: -0.2}, got); diff != "" {
		t.Errorf("allyProtection(no allies) mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetVulnerabilityBrackets(t *testing.T) {
	p := snapshotWith(100, 0, 1)
	tests := []struct {
		health float64
		want   Scores
	}{
		{0.05, Scores{atk: 0.8, spc: 1.2}},
		{0.25, Scores{atk: 0.5, spc: 0.4}},
		{0.50, Scores{atk: 0.2, spc: 0.1}},
		{0.75, Scores{spc: -0.2}},
	}
	for _, tc := range tests {
		got := targetVulnerability(p, &Target{ID: "foe", Side: SideEnemy, HealthFraction: tc.health})
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("targetVulnerability(%.2f) mismatch (-want +got):\n%s", tc.health, diff)
		}
	}

	if got := targetVulnerability(p, nil); len(got) != 0 {
		t.Errorf("targetVulnerability(nil) = %v, want empty", got)
	}
	if got := targetVulnerability(p, &Target{ID: "ally", Side: SideAlly, HealthFraction: 0.05}); len(got) != 0 {
		t.Errorf("targetVulnerability(ally) = %v, want empty", got)
	}
}

func TestResourcePressureBrackets(t *testing.T) {
	tests := []struct {
		energy int
		want   Scores
	}{
		{0, Scores{}},
		{1, Scores{spc: 0.3}},
		{2, Scores{spc: 0.4}},
		{3, Scores{atk: -0.1, spc: 0.8}},
		{5, Scores{atk: -0.1, spc: 0.8}},
	}
	for _, tc := range tests {
		got := resourcePressure(snapshotWith(100, tc.energy, 1), nil)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("resourcePressure(energy=%d) mismatch (-want +got):\n%s", tc.energy, diff)
		}
	}
}

func TestTempoAdvantageBrackets(t *testing.T) {
	tests := []struct {
		enemySpeed float64
		want       Scores
	}{
		{5, Scores{atk: 0.6, spc: 0.4}},    // +1.0
		{8, Scores{atk: 0.3, spc: 0.2}},    // +0.25
		{10, Scores{}},                     // parity
		{12.5, Scores{}},                   // -0.2
		{20, Scores{atk: -0.3, spc: -0.1}}, // -0.5
		{0, Scores{}},                      // zero speed guarded to 0
	}
	for _, tc := range tests {
		actor := fighter("actor", "trickster", 100, 5)
		foe := fighter("foe", "warden", 100, 5)
		foe.Speed = tc.enemySpeed
		p := perception.Build(actor, model.BattleState{
			PlayerParty: []model.Combatant{actor},
			EnemyParty:  []model.Combatant{foe},
		})
		got := tempoAdvantage(p, &Target{ID: "foe", Side: SideEnemy, HealthFraction: 1})
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("tempoAdvantage(enemySpeed=%.1f) mismatch (-want +got):\n%s", tc.enemySpeed, diff)
		}
	}
}

func TestRoundPhaseBrackets(t *testing.T) {
	early := Scores{def: 0.2, eva: 0.1, spc: -0.2}
	mid := Scores{atk: 0.1, spc: 0.1}
	late := Scores{atk: 0.3, def: -0.1, eva: -0.2, spc: 0.4}
	tests := []struct {
		round int
		want  Scores
	}{
		{1, early}, {2, early}, {3, mid}, {6, mid}, {7, late}, {20, late},
	}
	for _, tc := range tests {
		got := roundPhase(snapshotWith(100, 0, tc.round), nil)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("roundPhase(%d) mismatch (-want +got):\n%s", tc.round, diff)
		}
	}
}

func TestTeamAttritionBrackets(t *testing.T) {
	tests := []struct {
		actorStamina, foeStamina int
		want                     Scores
	}{
		{100, 50, Scores{atk: 0.4, def: -0.1, eva: -0.2, spc: 0.3}},
		{50, 100, Scores{atk: -0.3, def: 0.3, eva: 0.4, spc: -0.1}},
		{60, 50, Scores{}},
		{50, 60, Scores{}},
	}
	for _, tc := range tests {
		actor := fighter("actor", "warden", tc.actorStamina, 5)
		p := perception.Build(actor, model.BattleState{
			PlayerParty: []model.Combatant{actor},
			EnemyParty:  []model.Combatant{fighter("foe", "warden", tc.foeStamina, 5)},
		})
		got := teamAttrition(p, nil)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("teamAttrition(%d vs %d) mismatch (-want +got):\n%s", tc.actorStamina, tc.foeStamina, diff)
		}
	}
}

func TestFactorsFixedSet(t *testing.T) {
	want := []string{
		FactorSelfPreservation,
		FactorAllyProtection,
		FactorTargetVulnerability,
		FactorResourcePressure,
		FactorTempoAdvantage,
		FactorRoundPhase,
		FactorTeamAttrition,
	}
	if diff := cmp.Diff(want, FactorNames()); diff != "" {
		t.Errorf("FactorNames() mismatch (-want +got):\n%s", diff)
	}

	// callers get their own slice
	fs := Factors()
	fs[0] = nil
	if Factors()[0] == nil {
		t.Error("Factors() exposed the package-level slice")
	}
}

func TestPhaseOf(t *testing.T) {
	tests := []struct {
		round int
		want  RoundPhase
	}{
		{0, PhaseEarly}, {1, PhaseEarly}, {2, PhaseEarly},
		{3, PhaseMid}, {6, PhaseMid},
		{7, PhaseLate}, {50, PhaseLate},
	}
	for _, tc := range tests {
		if got := PhaseOf(tc.round); got != tc.want {
			t.Errorf("PhaseOf(%d) = %s, want %s", tc.round, got, tc.want)
		}
	}
}
