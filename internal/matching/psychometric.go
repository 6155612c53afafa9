package matching

import (
	"math"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// crucialWeightThreshold marks a trait as crucial for the role. Exceeding
// the ideal on a crucial trait is rewarded as a perfect hit instead of being
// penalized for overshoot.
const crucialWeightThreshold = 2.5

// behavioralFit is the psychometric portion of a match, plus the traits
// surfaced for explanation output.
type behavioralFit struct {
	score     float64
	strongest types.Trait
	weakest   types.Trait
}

// computeBehavioralFit scores a candidate profile against a role benchmark.
// Each trait contributes max(0, 100-distance) weighted by the role's trait
// weight; the result is normalized to [0,100]. The strongest and weakest
// traits are those with the maximum and minimum signed weighted delta
// (candidate minus ideal, times weight).
func computeBehavioralFit(profile types.BigFiveProfile, benchmark types.RoleBenchmark) behavioralFit {
	var totalWeightedScore, totalPossibleWeight float64

	strongestDelta := math.Inf(-1)
	weakestDelta := math.Inf(1)
	fit := behavioralFit{}

	for _, trait := range types.Traits() {
		candidateVal := profile.Get(trait)
		idealVal := benchmark.Ideal.Get(trait)
		weight := benchmark.Weights.Get(trait)

		distance := math.Abs(float64(candidateVal - idealVal))
		if weight >= crucialWeightThreshold && candidateVal > idealVal {
			distance = 0
		}

		traitScore := math.Max(0, 100-distance)
		totalWeightedScore += traitScore * weight
		totalPossibleWeight += 100 * weight

		delta := float64(candidateVal-idealVal) * weight
		if delta > strongestDelta {
			strongestDelta = delta
			fit.strongest = trait
		}
		if delta < weakestDelta {
			weakestDelta = delta
			fit.weakest = trait
		}
	}

	if totalPossibleWeight == 0 {
		// Zero-value benchmark; valid tables never produce this.
		fit.score = 50
		return fit
	}

	fit.score = totalWeightedScore / totalPossibleWeight * 100
	return fit
}
