package decision

import (
	"github.com/tgoodington/Ancient-Order-sub002/model"
	"github.com/tgoodington/Ancient-Order-sub002/perception"
)

// Factor names double as the weight keys in a Profile.
const (
	FactorSelfPreservation    = "self_preservation"
	FactorAllyProtection      = "ally_protection"
	FactorTargetVulnerability = "target_vulnerability"
	FactorResourcePressure    = "resource_pressure"
	FactorTempoAdvantage      = "tempo_advantage"
	FactorRoundPhase          = "round_phase"
	FactorTeamAttrition       = "team_attrition"
)

// Scores maps an action kind to a contribution, conventionally in [-1, 1].
// Kinds a factor has no opinion on are simply absent.
type Scores map[model.ActionKind]float64

// Side says which roster a candidate's target is on, relative to the actor.
type Side int

const (
	SideEnemy Side = iota
	SideAlly
)

// Target is the combatant a candidate action is aimed at.
type Target struct {
	ID             string
	Side           Side
	HealthFraction float64
}

// Factor is one independent scoring concern. Factors are stateless and never
// see each other's output.
type Factor interface {
	Name() string
	Score(p perception.Snapshot, target *Target) Scores
}

type factorFunc struct {
	name  string
	score func(p perception.Snapshot, target *Target) Scores
}

func (f factorFunc) Name() string { return f.name }

func (f factorFunc) Score(p perception.Snapshot, target *Target) Scores {
	return f.score(p, target)
}

var allFactors = []Factor{
	factorFunc{FactorSelfPreservation, selfPreservation},
	factorFunc{FactorAllyProtection, allyProtection},
	factorFunc{FactorTargetVulnerability, targetVulnerability},
	factorFunc{FactorResourcePressure, resourcePressure},
	factorFunc{FactorTempoAdvantage, tempoAdvantage},
	factorFunc{FactorRoundPhase, roundPhase},
	factorFunc{FactorTeamAttrition, teamAttrition},
}

// Factors returns the fixed set of scoring factors in declaration order.
func Factors() []Factor {
	out := make([]Factor, len(allFactors))
	copy(out, allFactors)
	return out
}

// FactorNames returns the weight keys a profile may use.
func FactorNames() []string {
	names := make([]string, len(allFactors))
	for i, f := range allFactors {
		names[i] = f.Name()
	}
	return names
}

func isFactorName(name string) bool {
	for _, f := range allFactors {
		if f.Name() == name {
			return true
		}
	}
	return false
}
