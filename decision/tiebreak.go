package decision

import (
	"slices"

	"github.com/tgoodington/Ancient-Order-sub002/model"
)

// preferenceOrders is the fixed action preference per affinity, consulted
// only when candidates tie on score.
var preferenceOrders = map[model.Affinity][]model.ActionKind{
	model.AffinityFire:   {atk, spc, grp, def, eva},
	model.AffinityWater:  {def, grp, eva, atk, spc},
	model.AffinityEarth:  {def, atk, grp, spc, eva},
	model.AffinityWind:   {eva, atk, spc, grp, def},
	model.AffinityLight:  {grp, def, spc, atk, eva},
	model.AffinityShadow: {spc, eva, atk, def, grp},
}

// PreferenceOrder returns the tie-break order for an affinity.
func PreferenceOrder(a model.Affinity) []model.ActionKind {
	return slices.Clone(preferenceOrders[a])
}

func preferenceIndex(order []model.ActionKind, kind model.ActionKind) int {
	if i := slices.Index(order, kind); i >= 0 {
		return i
	}
	return len(order)
}

// tieHealth is the target health used for tie-breaking. Untargeted actions
// count as 0 so they never lose to a targeted action on this rule.
func tieHealth(c Candidate) float64 {
	if c.Target == nil {
		return 0
	}
	return c.Target.HealthFraction
}

// BreakTie picks one candidate out of a set that shares the top score:
// earliest kind in the affinity order, then lowest target health. Anything
// still tied keeps input order.
func BreakTie(tied []Candidate, affinity model.Affinity) Candidate {
	if len(tied) == 1 {
		return tied[0]
	}
	order := preferenceOrders[affinity]
	best := tied[0]
	for _, c := range tied[1:] {
		bi, ci := preferenceIndex(order, best.Kind), preferenceIndex(order, c.Kind)
		if ci < bi || (ci == bi && tieHealth(c) < tieHealth(best)) {
			best = c
		}
	}
	return best
}

// selectWinner returns the top-scoring candidate, applying BreakTie across
// every candidate sharing the exact maximum. It reports false when no score
// is comparable.
func selectWinner(cands []Candidate, affinity model.Affinity) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	top := cands[0].Score
	for _, c := range cands[1:] {
		if c.Score > top {
			top = c.Score
		}
	}
	var tied []Candidate
	for _, c := range cands {
		if c.Score == top {
			tied = append(tied, c)
		}
	}
	// NaN never compares equal, not even to itself
	if len(tied) == 0 {
		return Candidate{}, false
	}
	return BreakTie(tied, affinity), true
}
