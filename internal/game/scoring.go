package game

import "math"

// MaxScore is the ceiling for both raw and difficulty-adjusted scores.
const MaxScore = 10000

// hintTierPenalties escalates so that early hints stay cheap while a
// fully hint-assisted round costs more than half the maximum score.
// Tiers past the fourth add nothing; the table is the cap.
var hintTierPenalties = [4]int{500, 1000, 1500, 2500}

// fuelPenaltyScale converts missing fuel into points: an empty tank
// costs half the maximum score.
const fuelPenaltyScale = 5000

// HintPenalty sums the first hintsUsed entries of the tier table.
// Counts below zero count as zero; counts above four are capped at the
// full table (no further penalty accrues past tier four).
func HintPenalty(hintsUsed int) int {
	if hintsUsed < 0 {
		hintsUsed = 0
	}
	if hintsUsed > len(hintTierPenalties) {
		hintsUsed = len(hintTierPenalties)
	}
	total := 0
	for _, p := range hintTierPenalties[:hintsUsed] {
		total += p
	}
	return total
}

// FuelPenalty converts the remaining fuel fraction into a point
// penalty. The fraction is assumed already clamped to [0, 1].
func FuelPenalty(fuelFraction float64) int {
	return int(math.Round((1.0 - fuelFraction) * fuelPenaltyScale))
}

// DifficultyMultiplier maps a difficulty rating in [0, 1] onto a score
// multiplier in [0.5, 1.0]. Trivial targets halve the score; obscure
// targets keep nearly all of it, which is what makes the score reflect
// how hard the round actually was.
func DifficultyMultiplier(rating float64) float64 {
	return 0.5 + 0.5*clamp01(rating)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}
