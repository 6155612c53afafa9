// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateProfile outputs a human-readable summary of a candidate,
// including the aggregated personality profile.
func (p *Printer) PrintCandidateProfile(candidate *types.Candidate) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", candidate.Name))
	sb.WriteString(fmt.Sprintf("Role:      %s (%s)\n", candidate.Role, candidate.Seniority))
	if candidate.Archetype != "" {
		sb.WriteString(fmt.Sprintf("Archetype: %s\n", candidate.Archetype))
	}
	sb.WriteString("\n")

	sb.WriteString("Personality:\n")
	sb.WriteString(fmt.Sprintf("  Openness          %3d\n", candidate.BigFive.Openness))
	sb.WriteString(fmt.Sprintf("  Conscientiousness %3d\n", candidate.BigFive.Conscientiousness))
	sb.WriteString(fmt.Sprintf("  Extraversion      %3d\n", candidate.BigFive.Extraversion))
	sb.WriteString(fmt.Sprintf("  Agreeableness     %3d\n", candidate.BigFive.Agreeableness))
	sb.WriteString(fmt.Sprintf("  Stability         %3d\n", candidate.BigFive.Stability))
	sb.WriteString(fmt.Sprintf("  Sincerity         %3d\n", candidate.SincerityScore))

	if len(candidate.Skills) > 0 {
		sb.WriteString("\n")
		skills := strings.Join(candidate.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown and analysis of a single match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Score:  %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("  Skills:     %d\n", result.Details.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Culture:    %d\n", result.Details.CultureMatch))
	if result.SeniorityGap {
		sb.WriteString("  ⚠ seniority below the opening\n")
	}
	sb.WriteString("\n")

	if len(result.Details.CommonSkills) > 0 {
		common := strings.Join(result.Details.CommonSkills, ", ")
		if len(common) > 45 {
			common = common[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", common))
	}
	if len(result.Details.MissingSkills) > 0 {
		missing := strings.Join(result.Details.MissingSkills, ", ")
		if len(missing) > 45 {
			missing = missing[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", missing))
	}

	if result.Analysis.Pros != "" {
		sb.WriteString("\nPros:\n")
		pros := result.Analysis.Pros
		if len(pros) > 50 {
			pros = pros[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", pros))
	}
	if len(result.Analysis.Cons) > 0 {
		sb.WriteString("\nCons:\n")
		count := min(len(result.Analysis.Cons), 3)
		for i := 0; i < count; i++ {
			con := result.Analysis.Cons[i]
			if len(con) > 50 {
				con = con[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", con))
		}
		if len(result.Analysis.Cons) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Analysis.Cons)-3))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N ranked candidates with their scores.
func (p *Printer) PrintRanking(job *types.Job, ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		p.printBox("RANKING", "No candidates to rank")
		return
	}

	var sb strings.Builder
	if job != nil {
		sb.WriteString(fmt.Sprintf("Opening: %s @ %s\n", job.Title, job.Company))
	}
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rc.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d (skills %d, culture %d)\n",
			rc.Result.Score, rc.Result.Details.SkillMatch, rc.Result.Details.CultureMatch))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKING", sb.String())
}
