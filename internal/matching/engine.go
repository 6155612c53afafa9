// Package matching implements the candidate-job match scoring engine: a
// deterministic weighted combination of skill overlap, psychometric fit and
// the practical-challenge score, with rule-based explanation output.
package matching

import (
	"math"

	"github.com/leandroarrudaa/db-deumatch/internal/benchmarks"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// Component weights of the final score.
const (
	technicalWeight  = 0.35
	behavioralWeight = 0.45
	challengeWeight  = 0.20

	// seniorityPenaltyFactor is applied to the weighted total when the
	// candidate's level is below the job's.
	seniorityPenaltyFactor = 0.85

	// defaultChallengeScore is used when no challenge was recorded.
	// Neutral-below-average: absence of data is not failure.
	defaultChallengeScore = 60.0
)

// Engine scores candidates against jobs using a role benchmark table.
// It is stateless apart from the read-only table and safe for concurrent use.
type Engine struct {
	table *benchmarks.Table
}

// New creates a scoring engine. A nil table selects the built-in benchmarks.
func New(table *benchmarks.Table) *Engine {
	if table == nil {
		table = benchmarks.Default()
	}
	return &Engine{table: table}
}

// Score computes the match between one candidate and one job. It is a pure
// function of its inputs: no I/O, no side effects, identical output for
// identical input. It never fails on well-formed entities; unknown roles
// fall back to the default benchmark and empty skill requirements score as
// full technical credit.
func (e *Engine) Score(candidate types.Candidate, job types.Job) types.MatchResult {
	technical, common, missing := skillOverlap(candidate.Skills, job.RequiredSkills)

	benchmark := e.table.Lookup(job.Role)
	fit := computeBehavioralFit(candidate.BigFive, benchmark)

	challenge := defaultChallengeScore
	if candidate.Challenge != nil {
		challenge = float64(candidate.Challenge.CommunicationScore) * 10
	}

	total := technical*technicalWeight + fit.score*behavioralWeight + challenge*challengeWeight

	seniorityGap := false
	candidateLevel := candidate.Seniority.Level()
	jobLevel := job.Seniority.Level()
	if candidateLevel > 0 && jobLevel > 0 && candidateLevel < jobLevel {
		total *= seniorityPenaltyFactor
		seniorityGap = true
	}

	total = clampScore(total)

	return types.MatchResult{
		Score: int(math.Round(total)),
		Analysis: types.MatchAnalysis{
			Pros: buildPros(technical, fit, challenge, common, job.Role),
			Cons: buildCons(gapInput{
				candidate:    candidate,
				job:          job,
				technical:    technical,
				total:        total,
				missing:      missing,
				seniorityGap: seniorityGap,
			}),
		},
		Details: types.MatchDetails{
			SkillMatch:    int(math.Round(technical)),
			CultureMatch:  int(math.Round(fit.score)),
			CommonSkills:  common,
			MissingSkills: missing,
		},
		SeniorityGap: seniorityGap,
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
