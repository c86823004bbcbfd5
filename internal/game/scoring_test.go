package game

import (
	"math"
	"testing"
)

func TestHintPenalty(t *testing.T) {
	tests := []struct {
		hints int
		want  int
	}{
		{0, 0},
		{1, 500},
		{2, 1500},
		{3, 3000},
		{4, 5500},
		// Past tier four no further penalty accrues.
		{5, 5500},
		{100, 5500},
		// Negative counts are treated as zero hints.
		{-1, 0},
	}

	for _, tt := range tests {
		if got := HintPenalty(tt.hints); got != tt.want {
			t.Errorf("HintPenalty(%d) = %d, want %d", tt.hints, got, tt.want)
		}
	}
}

func TestHintPenaltyMonotonic(t *testing.T) {
	prev := 0
	for k := 0; k <= 6; k++ {
		p := HintPenalty(k)
		if p < prev {
			t.Fatalf("penalty decreased at k=%d: %d < %d", k, p, prev)
		}
		prev = p
	}
}

func TestFuelPenalty(t *testing.T) {
	tests := []struct {
		fuel float64
		want int
	}{
		{1.0, 0},
		{0.0, 5000},
		{0.5, 2500},
		{0.75, 1250},
		{0.9999, 1}, // rounds, not truncates
	}

	for _, tt := range tests {
		if got := FuelPenalty(tt.fuel); got != tt.want {
			t.Errorf("FuelPenalty(%v) = %d, want %d", tt.fuel, got, tt.want)
		}
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		rating float64
		want   float64
	}{
		{0.0, 0.5},
		{1.0, 1.0},
		{0.6, 0.8},
		{-3, 0.5}, // out-of-range ratings clamp
		{7, 1.0},
	}

	for _, tt := range tests {
		if got := DifficultyMultiplier(tt.rating); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DifficultyMultiplier(%v) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	// Exhaustive-ish sweep: all hint counts, fuel and difficulty grids.
	for hints := -1; hints <= 6; hints++ {
		for fi := 0; fi <= 20; fi++ {
			fuel := float64(fi) / 20
			for di := 0; di <= 10; di++ {
				rating := float64(di) / 10
				raw := clampScore(MaxScore - HintPenalty(hints) - FuelPenalty(fuel))
				if raw < 0 || raw > MaxScore {
					t.Fatalf("raw score out of bounds: hints=%d fuel=%v raw=%d", hints, fuel, raw)
				}
				weighted := clampScore(int(math.Round(float64(raw) * DifficultyMultiplier(rating))))
				if weighted < 0 || weighted > MaxScore {
					t.Fatalf("score out of bounds: hints=%d fuel=%v rating=%v score=%d",
						hints, fuel, rating, weighted)
				}
			}
		}
	}
}
