// Package types provides type definitions for structured data used throughout the deumatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Trait identifies one of the five personality dimensions.
type Trait string

// The five traits, in canonical evaluation order.
const (
	TraitOpenness          Trait = "openness"
	TraitConscientiousness Trait = "conscientiousness"
	TraitExtraversion      Trait = "extraversion"
	TraitAgreeableness     Trait = "agreeableness"
	TraitStability         Trait = "stability"
)

// Traits returns the five traits in canonical order. Scoring and explanation
// rules iterate in this order so results are deterministic.
func Traits() []Trait {
	return []Trait{
		TraitOpenness,
		TraitConscientiousness,
		TraitExtraversion,
		TraitAgreeableness,
		TraitStability,
	}
}

// PortugueseTraitLabels maps traits to the labels used in recruiter-facing
// explanation text.
var PortugueseTraitLabels = map[Trait]string{
	TraitOpenness:          "Abertura",
	TraitConscientiousness: "Disciplina",
	TraitExtraversion:      "Extroversão",
	TraitAgreeableness:     "Empatia",
	TraitStability:         "Resiliência",
}

// BigFiveProfile holds the five personality trait scores as percentages.
// Values are always in [0,100].
type BigFiveProfile struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Stability         int `json:"stability"`
}

// Get returns the score for a single trait. Unknown traits return 0.
func (p BigFiveProfile) Get(t Trait) int {
	switch t {
	case TraitOpenness:
		return p.Openness
	case TraitConscientiousness:
		return p.Conscientiousness
	case TraitExtraversion:
		return p.Extraversion
	case TraitAgreeableness:
		return p.Agreeableness
	case TraitStability:
		return p.Stability
	}
	return 0
}

// Clamped returns a copy with every trait forced into [0,100].
func (p BigFiveProfile) Clamped() BigFiveProfile {
	return BigFiveProfile{
		Openness:          clampPercent(p.Openness),
		Conscientiousness: clampPercent(p.Conscientiousness),
		Extraversion:      clampPercent(p.Extraversion),
		Agreeableness:     clampPercent(p.Agreeableness),
		Stability:         clampPercent(p.Stability),
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// TraitWeights holds the per-trait importance weights of a role benchmark.
// Weights are typically in [0.5, 3.0]; a weight >= 2.5 marks the trait as
// crucial for the role.
type TraitWeights struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Stability         float64 `json:"stability"`
}

// Get returns the weight for a single trait. Unknown traits return 0.
func (w TraitWeights) Get(t Trait) float64 {
	switch t {
	case TraitOpenness:
		return w.Openness
	case TraitConscientiousness:
		return w.Conscientiousness
	case TraitExtraversion:
		return w.Extraversion
	case TraitAgreeableness:
		return w.Agreeableness
	case TraitStability:
		return w.Stability
	}
	return 0
}

// RoleBenchmark pairs a role's ideal trait profile with the per-trait
// importance weights used when scoring candidates against it.
type RoleBenchmark struct {
	Ideal   BigFiveProfile `json:"ideal"`
	Weights TraitWeights   `json:"weights"`
}
