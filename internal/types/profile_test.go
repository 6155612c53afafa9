package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraits_CanonicalOrder(t *testing.T) {
	traits := Traits()
	assert.Equal(t, []Trait{
		TraitOpenness,
		TraitConscientiousness,
		TraitExtraversion,
		TraitAgreeableness,
		TraitStability,
	}, traits)
}

func TestBigFiveProfile_Get(t *testing.T) {
	p := BigFiveProfile{
		Openness:          10,
		Conscientiousness: 20,
		Extraversion:      30,
		Agreeableness:     40,
		Stability:         50,
	}

	assert.Equal(t, 10, p.Get(TraitOpenness))
	assert.Equal(t, 20, p.Get(TraitConscientiousness))
	assert.Equal(t, 30, p.Get(TraitExtraversion))
	assert.Equal(t, 40, p.Get(TraitAgreeableness))
	assert.Equal(t, 50, p.Get(TraitStability))
	assert.Equal(t, 0, p.Get(Trait("unknown")))
}

func TestBigFiveProfile_Clamped(t *testing.T) {
	p := BigFiveProfile{
		Openness:          -5,
		Conscientiousness: 150,
		Extraversion:      0,
		Agreeableness:     100,
		Stability:         72,
	}

	clamped := p.Clamped()
	assert.Equal(t, 0, clamped.Openness)
	assert.Equal(t, 100, clamped.Conscientiousness)
	assert.Equal(t, 0, clamped.Extraversion)
	assert.Equal(t, 100, clamped.Agreeableness)
	assert.Equal(t, 72, clamped.Stability)
}

func TestTraitWeights_Get(t *testing.T) {
	w := TraitWeights{
		Openness:          1,
		Conscientiousness: 2.5,
		Extraversion:      1.5,
		Agreeableness:     0.5,
		Stability:         3,
	}

	assert.InDelta(t, 2.5, w.Get(TraitConscientiousness), 0.0001)
	assert.InDelta(t, 3, w.Get(TraitStability), 0.0001)
	assert.Zero(t, w.Get(Trait("bogus")))
}

func TestSeniority_LevelOrdering(t *testing.T) {
	assert.Equal(t, 1, SeniorityJunior.Level())
	assert.Equal(t, 2, SeniorityPleno.Level())
	assert.Equal(t, 3, SenioritySenior.Level())
	assert.Equal(t, 0, Seniority("Estagiário").Level())

	assert.Less(t, SeniorityJunior.Level(), SeniorityPleno.Level())
	assert.Less(t, SeniorityPleno.Level(), SenioritySenior.Level())
}

func TestRole_RoutineClassification(t *testing.T) {
	assert.True(t, RoleSDR.ProspectingHeavy())
	assert.True(t, RoleBDR.ProspectingHeavy())
	assert.True(t, RoleCloser.ProspectingHeavy())
	assert.False(t, RoleCS.ProspectingHeavy())

	assert.True(t, RoleCloser.ClosingHeavy())
	assert.True(t, RoleAccountExecutive.ClosingHeavy())
	assert.False(t, RoleSDR.ClosingHeavy())
	assert.False(t, Role("RevOps").ClosingHeavy())
}
