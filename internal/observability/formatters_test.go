package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

func TestPrintCandidateProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidate := &types.Candidate{
		Name:      "Maria Santos",
		Role:      types.RoleSDR,
		Seniority: types.SeniorityPleno,
		Archetype: "HUNTER DE ELITE",
		Skills:    []string{"Cold Calling", "CRM"},
		BigFive: types.BigFiveProfile{
			Openness:          70,
			Conscientiousness: 85,
			Extraversion:      90,
			Agreeableness:     60,
			Stability:         75,
		},
		SincerityScore: 80,
	}

	p.PrintCandidateProfile(candidate)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE PROFILE")
	assert.Contains(t, output, "Maria Santos")
	assert.Contains(t, output, "HUNTER DE ELITE")
	assert.Contains(t, output, "Extraversion")
	assert.Contains(t, output, "90")
	assert.Contains(t, output, "Cold Calling, CRM")
}

func TestPrintCandidateProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidateProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		Score:        87,
		SeniorityGap: true,
		Analysis: types.MatchAnalysis{
			Pros: "Excelente domínio das habilidades exigidas",
			Cons: []string{"Senioridade abaixo da vaga"},
		},
		Details: types.MatchDetails{
			SkillMatch:    90,
			CultureMatch:  85,
			CommonSkills:  []string{"Outbound", "Negociação"},
			MissingSkills: []string{"HubSpot"},
		},
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "87/100")
	assert.Contains(t, output, "seniority below the opening")
	assert.Contains(t, output, "Outbound")
	assert.Contains(t, output, "HubSpot")
	assert.Contains(t, output, "Senioridade abaixo da vaga")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.Job{Title: "SDR Pleno", Company: "TechBras"}
	ranked := []types.RankedCandidate{
		{
			Name: "Maria Santos",
			Result: types.MatchResult{
				Score:   92,
				Details: types.MatchDetails{SkillMatch: 95, CultureMatch: 90},
			},
		},
		{
			Name: "João Silva",
			Result: types.MatchResult{
				Score:   74,
				Details: types.MatchDetails{SkillMatch: 70, CultureMatch: 80},
			},
		},
	}

	p.PrintRanking(job, ranked)
	output := buf.String()

	assert.Contains(t, output, "RANKING")
	assert.Contains(t, output, "SDR Pleno @ TechBras")
	assert.Contains(t, output, "#1  Maria Santos")
	assert.Contains(t, output, "#2  João Silva")
	assert.Contains(t, output, "Score: 92")
}

func TestPrintRanking_OverflowIsSummarized(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranked := make([]types.RankedCandidate, 8)
	for i := range ranked {
		ranked[i] = types.RankedCandidate{Name: "Candidate"}
	}

	p.PrintRanking(nil, ranked)
	output := buf.String()

	assert.Contains(t, output, "Candidates ranked: 8")
	assert.Contains(t, output, "... and 3 more candidates")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil, nil)

	assert.Contains(t, buf.String(), "No candidates to rank")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidate := &types.Candidate{
		Name: "A Candidate With A Very Long Name That Should Be Truncated To Fit The Box",
		Role: types.RoleCloser,
	}

	p.PrintCandidateProfile(candidate)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
	assert.Contains(t, output, "...")
}
