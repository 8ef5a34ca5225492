package decision

import "math"

const (
	rankFloor    = 0.2
	rankScaleMax = 10.0
)

// RankCoefficient scales how much tactical reasoning (the factor sum) counts
// against an archetype's innate bias. Low ranks bottom out at the floor; there
// is no ceiling because rank is open-ended.
func RankCoefficient(rank float64) float64 {
	return math.Max(rankFloor, rank/rankScaleMax)
}
