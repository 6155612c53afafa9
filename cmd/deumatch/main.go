// Package main provides the entry point for the DeuMatch API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deumatch",
	Short: "DeuMatch sales hiring platform",
	Long:  "DeuMatch matches sales candidates to openings by combining a Big Five questionnaire, skill overlap and a practical challenge into a single compatibility score, served over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
