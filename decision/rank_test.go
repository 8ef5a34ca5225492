package decision

import "testing"

func TestRankCoefficient(t *testing.T) {
	tests := []struct {
		rank, want float64
	}{
		{0.0, 0.2},
		{1.0, 0.2},
		{2.0, 0.2},
		{5.0, 0.5},
		{10.0, 1.0},
		{15.0, 1.5}, // rank is open-ended
	}
	for _, tc := range tests {
		if got := RankCoefficient(tc.rank); got != tc.want {
			t.Errorf("RankCoefficient(%.1f) = %f, want %f", tc.rank, got, tc.want)
		}
	}
}

func TestRankCoefficientMonotonic(t *testing.T) {
	prev := RankCoefficient(-5)
	for r := -5.0; r <= 20.0; r += 0.25 {
		got := RankCoefficient(r)
		if got < prev {
			t.Fatalf("RankCoefficient(%.2f) = %f < previous %f", r, got, prev)
		}
		if got < rankFloor {
			t.Fatalf("RankCoefficient(%.2f) = %f below floor", r, got)
		}
		prev = got
	}
}
