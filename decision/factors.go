package decision

import (
	"github.com/tgoodington/Ancient-Order-sub002/model"
	"github.com/tgoodington/Ancient-Order-sub002/perception"
)

// Shorthand for the bracket tables below.
const (
	atk = model.ActionAttack
	def = model.ActionDefend
	eva = model.ActionEvade
	spc = model.ActionSpecial
	grp = model.ActionGroup
)

// selfPreservation reacts to the actor's own health: hurt actors lean
// toward evading and defending and away from offense.
func selfPreservation(p perception.Snapshot, _ *Target) Scores {
	h := p.Self().HealthFraction
	switch {
	case h < 0.25:
		return Scores{atk: -0.5, def: 0.2, eva: 0.8, spc: -0.3}
	case h < 0.50:
		return Scores{atk: -0.2, def: 0.3, eva: 0.4, grp: 0.1}
	case h < 0.75:
		return Scores{def: 0.1, eva: 0.1}
	default:
		return Scores{atk: 0.2, eva: -0.2, spc: 0.1}
	}
}

// allyProtection reacts to the most wounded living ally.
func allyProtection(p perception.Snapshot, _ *Target) Scores {
	a := p.LowestAllyHealth()
	switch {
	case a < 0.25:
		return Scores{atk: -0.3, def: 1.0, eva: -0.4, spc: -0.1, grp: 0.3}
	case a < 0.50:
		return Scores{atk: -0.1, def: 0.5, eva: -0.2, grp: 0.2}
	default:
		return Scores{def: -0.2}
	}
}

// targetVulnerability pushes offense against a badly hurt enemy.
func targetVulnerability(_ perception.Snapshot, target *Target) Scores {
	if target == nil || target.Side != SideEnemy {
		return Scores{}
	}
	t := target.HealthFraction
	switch {
	case t < 0.25:
		return Scores{atk: 0.8, spc: 1.2}
	case t < 0.50:
		return Scores{atk: 0.5, spc: 0.4}
	case t < 0.75:
		return Scores{atk: 0.2, spc: 0.1}
	default:
		return Scores{spc: -0.2}
	}
}

// resourcePressure favours spending energy when reserves are high. Whether
// special is available at all is decided by the legality gates.
func resourcePressure(p perception.Snapshot, _ *Target) Scores {
	switch n := p.Self().Energy; {
	case n >= 3:
		return Scores{atk: -0.1, spc: 0.8}
	case n == 2:
		return Scores{spc: 0.4}
	case n == 1:
		return Scores{spc: 0.3}
	default:
		return Scores{}
	}
}

// tempoAdvantage exploits a speed lead over the target; the resolution
// pipeline grants a bonus to faster attackers.
func tempoAdvantage(p perception.Snapshot, target *Target) Scores {
	if target == nil || target.Side != SideEnemy {
		return Scores{}
	}
	e, ok := p.Enemy(target.ID)
	if !ok {
		return Scores{}
	}
	switch r := e.RelativeSpeed; {
	case r >= 0.5:
		return Scores{atk: 0.6, spc: 0.4}
	case r >= 0.2:
		return Scores{atk: 0.3, spc: 0.2}
	case r <= -0.3:
		return Scores{atk: -0.3, spc: -0.1}
	default:
		return Scores{}
	}
}

// RoundPhase is the pacing bracket a round number falls into.
type RoundPhase string

const (
	PhaseEarly RoundPhase = "early"
	PhaseMid   RoundPhase = "mid"
	PhaseLate  RoundPhase = "late"
)

// PhaseOf returns the pacing bracket for a round: 1–2 early, 3–6 mid, then late.
func PhaseOf(round int) RoundPhase {
	switch {
	case round <= 2:
		return PhaseEarly
	case round <= 6:
		return PhaseMid
	default:
		return PhaseLate
	}
}

// roundPhase models pacing: build up early, press late.
func roundPhase(p perception.Snapshot, _ *Target) Scores {
	switch PhaseOf(p.Round()) {
	case PhaseEarly:
		return Scores{def: 0.2, eva: 0.1, spc: -0.2}
	case PhaseMid:
		return Scores{atk: 0.1, spc: 0.1}
	default:
		return Scores{atk: 0.3, def: -0.1, eva: -0.2, spc: 0.4}
	}
}

// teamAttrition compares average health across the two sides. Near parity
// contributes nothing.
func teamAttrition(p perception.Snapshot, _ *Target) Scores {
	switch d := p.TeamAverageHealth() - p.AverageEnemyHealth(); {
	case d >= 0.2:
		return Scores{atk: 0.4, def: -0.1, eva: -0.2, spc: 0.3}
	case d <= -0.2:
		return Scores{atk: -0.3, def: 0.3, eva: 0.4, spc: -0.1}
	default:
		return Scores{}
	}
}
