package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates_OrdersByScoreDescending(t *testing.T) {
	engine := New(nil)
	job := sdrJob()

	strong := perfectSDRCandidate()
	strong.Name = "strong"

	weak := perfectSDRCandidate()
	weak.Name = "weak"
	weak.Skills = nil
	weak.BigFive = types.BigFiveProfile{Openness: 30, Conscientiousness: 30, Extraversion: 30, Agreeableness: 30, Stability: 30}

	middling := perfectSDRCandidate()
	middling.Name = "middling"
	middling.Skills = []string{"CRM"}

	ranked, err := engine.RankCandidates(context.Background(), []types.Candidate{weak, strong, middling}, job)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "strong", ranked[0].Name)
	assert.Equal(t, "middling", ranked[1].Name)
	assert.Equal(t, "weak", ranked[2].Name)
	assert.GreaterOrEqual(t, ranked[0].Result.Score, ranked[1].Result.Score)
	assert.GreaterOrEqual(t, ranked[1].Result.Score, ranked[2].Result.Score)
}

func TestRankCandidates_TieBreaksOnCandidateID(t *testing.T) {
	engine := New(nil)
	job := sdrJob()

	first := perfectSDRCandidate()
	first.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second := perfectSDRCandidate()
	second.ID = uuid.MustParse("00000000-0000-0000-0000-000000000002")

	// Identical candidates score identically; order must be reproducible.
	for range 5 {
		ranked, err := engine.RankCandidates(context.Background(), []types.Candidate{second, first}, job)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, first.ID, ranked[0].CandidateID)
		assert.Equal(t, second.ID, ranked[1].CandidateID)
	}
}

func TestRankCandidates_EmptyInput(t *testing.T) {
	engine := New(nil)
	ranked, err := engine.RankCandidates(context.Background(), nil, sdrJob())
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankCandidates_CancelledContext(t *testing.T) {
	engine := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := make([]types.Candidate, 50)
	for i := range candidates {
		candidates[i] = perfectSDRCandidate()
	}

	_, err := engine.RankCandidates(ctx, candidates, sdrJob())
	assert.Error(t, err)
}

func TestRankCandidates_ManyCandidates(t *testing.T) {
	engine := New(nil)
	job := sdrJob()

	candidates := make([]types.Candidate, 100)
	for i := range candidates {
		c := perfectSDRCandidate()
		if i%2 == 0 {
			c.Skills = []string{"CRM"}
		}
		candidates[i] = c
	}

	ranked, err := engine.RankCandidates(context.Background(), candidates, job)
	require.NoError(t, err)
	require.Len(t, ranked, 100)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Result.Score, ranked[i].Result.Score)
	}
}
