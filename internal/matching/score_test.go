package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leandroarrudaa/db-deumatch/internal/benchmarks"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sdrIdeal mirrors the built-in SDR benchmark ideal profile.
var sdrIdeal = types.BigFiveProfile{
	Openness:          60,
	Conscientiousness: 90,
	Extraversion:      70,
	Agreeableness:     40,
	Stability:         95,
}

func perfectSDRCandidate() types.Candidate {
	return types.Candidate{
		ID:        uuid.New(),
		Name:      "Ana Prado",
		Role:      types.RoleSDR,
		Seniority: types.SenioritySenior,
		Skills:    []string{"CRM", "LinkedIn", "Cold Call"},
		BigFive:   sdrIdeal,
		Challenge: &types.ChallengeSubmission{CommunicationScore: 10},
	}
}

func sdrJob() types.Job {
	return types.Job{
		ID:             uuid.New(),
		Title:          "SDR Sênior",
		Company:        "Acme",
		Role:           types.RoleSDR,
		Seniority:      types.SenioritySenior,
		RequiredSkills: []string{"CRM", "LinkedIn"},
	}
}

func TestScore_PerfectMatch(t *testing.T) {
	engine := New(nil)
	result := engine.Score(perfectSDRCandidate(), sdrJob())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 100, result.Details.SkillMatch)
	assert.Equal(t, 100, result.Details.CultureMatch)
	assert.False(t, result.SeniorityGap)
	assert.Empty(t, result.Details.MissingSkills)
}

func TestScore_Idempotent(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.BigFive.Extraversion = 55
	candidate.Skills = []string{"CRM"}
	job := sdrJob()

	first := engine.Score(candidate, job)
	second := engine.Score(candidate, job)
	assert.Equal(t, first, second)
}

func TestScore_RangeInvariant(t *testing.T) {
	engine := New(nil)

	candidates := []types.Candidate{
		{Name: "worst", Seniority: types.SeniorityJunior, BigFive: types.BigFiveProfile{},
			Challenge: &types.ChallengeSubmission{CommunicationScore: 0}},
		{Name: "best", Seniority: types.SenioritySenior,
			BigFive: types.BigFiveProfile{Openness: 100, Conscientiousness: 100, Extraversion: 100, Agreeableness: 100, Stability: 100},
			Skills:  []string{"CRM"}, Challenge: &types.ChallengeSubmission{CommunicationScore: 10}},
		{Name: "mid", Seniority: types.SeniorityPleno,
			BigFive: types.BigFiveProfile{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Stability: 50}},
	}
	jobs := []types.Job{
		sdrJob(),
		{Role: types.Role("RevOps"), Seniority: types.SenioritySenior, RequiredSkills: []string{"Salesforce", "Excel"}},
		{Role: types.RoleCS, Seniority: types.SeniorityJunior},
	}

	for _, candidate := range candidates {
		for _, job := range jobs {
			result := engine.Score(candidate, job)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			assert.GreaterOrEqual(t, result.Details.SkillMatch, 0)
			assert.LessOrEqual(t, result.Details.SkillMatch, 100)
			assert.GreaterOrEqual(t, result.Details.CultureMatch, 0)
			assert.LessOrEqual(t, result.Details.CultureMatch, 100)
		}
	}
}

func TestScore_SkillOverlapCaseInsensitive(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.Skills = []string{"crm"}
	job := sdrJob() // requires CRM, LinkedIn

	result := engine.Score(candidate, job)

	assert.Equal(t, 50, result.Details.SkillMatch)
	assert.Equal(t, []string{"CRM"}, result.Details.CommonSkills)
	assert.Equal(t, []string{"LinkedIn"}, result.Details.MissingSkills)
}

func TestScore_EmptyRequiredSkillsGrantsFullCredit(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.Skills = nil
	job := sdrJob()
	job.RequiredSkills = nil

	result := engine.Score(candidate, job)
	assert.Equal(t, 100, result.Details.SkillMatch)
	assert.Empty(t, result.Details.CommonSkills)
	assert.Empty(t, result.Details.MissingSkills)
}

func TestScore_SeniorityPenalty(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.Seniority = types.SeniorityJunior
	job := sdrJob() // requires Sênior

	result := engine.Score(candidate, job)

	// The 0.85 multiplier applies to the full weighted total (100) after
	// the weighted sum and before clamping.
	assert.Equal(t, 85, result.Score)
	assert.True(t, result.SeniorityGap)
}

func TestScore_NoPenaltyWhenOverqualified(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.Seniority = types.SenioritySenior
	job := sdrJob()
	job.Seniority = types.SeniorityJunior

	result := engine.Score(candidate, job)
	assert.Equal(t, 100, result.Score)
	assert.False(t, result.SeniorityGap)
}

func TestScore_MissingChallengeDefaultsNeutral(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.Challenge = nil

	result := engine.Score(candidate, sdrJob())

	// 100*0.35 + 100*0.45 + 60*0.20 = 92
	assert.Equal(t, 92, result.Score)
}

func TestScore_UnknownRoleUsesDefaultBenchmark(t *testing.T) {
	engine := New(nil)
	candidate := perfectSDRCandidate()
	candidate.BigFive = types.BigFiveProfile{
		Openness: 50, Conscientiousness: 50, Extraversion: 50,
		Agreeableness: 50, Stability: 50,
	}
	job := sdrJob()
	job.Role = types.Role("Head Comercial")

	result := engine.Score(candidate, job)
	assert.Equal(t, 100, result.Details.CultureMatch)
}

func TestScore_CustomBenchmarkTable(t *testing.T) {
	table, err := benchmarks.Load([]byte(`{
		"default": {
			"ideal": {"openness": 0, "conscientiousness": 0, "extraversion": 0, "agreeableness": 0, "stability": 0},
			"weights": {"openness": 1, "conscientiousness": 1, "extraversion": 1, "agreeableness": 1, "stability": 1}
		}
	}`))
	require.NoError(t, err)
	engine := New(table)

	candidate := perfectSDRCandidate()
	candidate.BigFive = types.BigFiveProfile{}

	result := engine.Score(candidate, sdrJob())
	assert.Equal(t, 100, result.Details.CultureMatch)
}

func TestComputeBehavioralFit_OverachievementBonus(t *testing.T) {
	benchmark := types.RoleBenchmark{
		Ideal:   sdrIdeal, // stability 95
		Weights: types.TraitWeights{Openness: 1, Conscientiousness: 2.5, Extraversion: 1.5, Agreeableness: 0.5, Stability: 3},
	}

	profile := sdrIdeal
	profile.Stability = 100 // overshoot on a crucial trait (weight 3)

	fit := computeBehavioralFit(profile, benchmark)
	assert.InDelta(t, 100, fit.score, 0.0001)
}

func TestComputeBehavioralFit_NoBonusBelowCrucialWeight(t *testing.T) {
	benchmark := types.RoleBenchmark{
		Ideal:   sdrIdeal, // openness 60, weight 1
		Weights: types.TraitWeights{Openness: 1, Conscientiousness: 2.5, Extraversion: 1.5, Agreeableness: 0.5, Stability: 3},
	}

	profile := sdrIdeal
	profile.Openness = 100 // overshoot on a non-crucial trait is penalized

	fit := computeBehavioralFit(profile, benchmark)
	// openness contributes 60*1 instead of 100*1: (60+750)/850*100
	assert.InDelta(t, 95.294, fit.score, 0.01)
}

func TestComputeBehavioralFit_BonusFiresExactlyAtThreshold(t *testing.T) {
	benchmark := types.RoleBenchmark{
		Ideal:   sdrIdeal, // conscientiousness 90, weight exactly 2.5
		Weights: types.TraitWeights{Openness: 1, Conscientiousness: 2.5, Extraversion: 1.5, Agreeableness: 0.5, Stability: 3},
	}

	profile := sdrIdeal
	profile.Conscientiousness = 100

	fit := computeBehavioralFit(profile, benchmark)
	assert.InDelta(t, 100, fit.score, 0.0001)
}

func TestComputeBehavioralFit_StrongestAndWeakestTraits(t *testing.T) {
	benchmark := types.RoleBenchmark{
		Ideal:   sdrIdeal,
		Weights: types.TraitWeights{Openness: 1, Conscientiousness: 2.5, Extraversion: 1.5, Agreeableness: 0.5, Stability: 3},
	}

	profile := sdrIdeal
	profile.Openness = 90   // +30 * 1 = +30
	profile.Stability = 75  // -20 * 3 = -60
	profile.Extraversion = 60 // -10 * 1.5 = -15

	fit := computeBehavioralFit(profile, benchmark)
	assert.Equal(t, types.TraitOpenness, fit.strongest)
	assert.Equal(t, types.TraitStability, fit.weakest)
}

func TestSkillOverlap_TrimsWhitespace(t *testing.T) {
	score, common, missing := skillOverlap([]string{" CRM  ", "Pipedrive"}, []string{"crm", "HubSpot"})
	assert.InDelta(t, 50, score, 0.0001)
	assert.Equal(t, []string{"crm"}, common)
	assert.Equal(t, []string{"HubSpot"}, missing)
}
