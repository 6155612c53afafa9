package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leandroarrudaa/db-deumatch/internal/matching"
	"github.com/leandroarrudaa/db-deumatch/internal/observability"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a pool of candidates against a job",
	Long:  "Scores every candidate from a JSON array against a job JSON file without touching the database, producing ranked results sorted best first.",
	RunE:  runRank,
}

var (
	rankCandidates string
	rankJob        string
	rankOutput     string
	rankBenchmarks string
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to input JSON file with an array of candidates (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to input Job JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().StringVar(&rankBenchmarks, "benchmarks", "", "Path to a role benchmark JSON file (default: built-in table)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted ranking summary")

	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	var candidates []types.Candidate
	if err := readJSONFile(rankCandidates, &candidates); err != nil {
		return err
	}

	var job types.Job
	if err := readJSONFile(rankJob, &job); err != nil {
		return err
	}

	table, err := loadBenchmarkTable(rankBenchmarks)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	engine := matching.New(table)
	ranked, err := engine.RankCandidates(ctx, candidates, job)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRanking(&job, ranked)
	}

	return writeJSONOutput(rankOutput, ranked)
}
