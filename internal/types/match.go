package types

import "github.com/google/uuid"

// MatchDetails is the per-component breakdown of a match score.
type MatchDetails struct {
	SkillMatch    int      `json:"skill_match"`   // rounded technical score, 0-100
	CultureMatch  int      `json:"culture_match"` // rounded behavioral score, 0-100
	CommonSkills  []string `json:"common_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// MatchAnalysis carries the recruiter-facing explanation of a match.
// Cons preserves the fixed rule-evaluation order, not severity order.
type MatchAnalysis struct {
	Pros string   `json:"pros"`
	Cons []string `json:"cons"`
}

// MatchResult is the output of scoring one candidate against one job.
// Built fresh on every call and never mutated.
type MatchResult struct {
	Score        int           `json:"score"` // 0-100
	Analysis     MatchAnalysis `json:"analysis"`
	Details      MatchDetails  `json:"details"`
	SeniorityGap bool          `json:"seniority_gap"`
}

// RankedCandidate pairs a candidate with their match result for a job,
// used in ranking responses.
type RankedCandidate struct {
	CandidateID uuid.UUID   `json:"candidate_id"`
	Name        string      `json:"name"`
	Result      MatchResult `json:"result"`
}
