package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leandroarrudaa/db-deumatch/internal/benchmarks"
	"github.com/leandroarrudaa/db-deumatch/internal/matching"
	"github.com/leandroarrudaa/db-deumatch/internal/observability"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against one job",
	Long:  "Scores a candidate JSON file against a job JSON file without touching the database, producing a MatchResult JSON. Useful for tuning benchmarks and debugging individual matches.",
	RunE:  runScore,
}

var (
	scoreCandidate  string
	scoreJob        string
	scoreOutput     string
	scoreBenchmarks string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to input Job JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output MatchResult JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreBenchmarks, "benchmarks", "", "Path to a role benchmark JSON file (default: built-in table)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted breakdown of the match")

	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func loadBenchmarkTable(path string) (*benchmarks.Table, error) {
	if path == "" {
		return benchmarks.Default(), nil
	}
	table, err := benchmarks.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmarks from %s: %w", path, err)
	}
	return table, nil
}

func readJSONFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

func runScore(_ *cobra.Command, _ []string) error {
	var candidate types.Candidate
	if err := readJSONFile(scoreCandidate, &candidate); err != nil {
		return err
	}

	var job types.Job
	if err := readJSONFile(scoreJob, &job); err != nil {
		return err
	}

	table, err := loadBenchmarkTable(scoreBenchmarks)
	if err != nil {
		return err
	}

	engine := matching.New(table)
	result := engine.Score(candidate, job)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCandidateProfile(&candidate)
		printer.PrintMatchResult(&result)
	}

	return writeJSONOutput(scoreOutput, result)
}
