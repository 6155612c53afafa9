package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leandroarrudaa/db-deumatch/internal/config"
	"github.com/leandroarrudaa/db-deumatch/internal/server"
)

var (
	servePort       int
	serveBenchmarks string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes candidate intake, job management, matching and ranking endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: 8080)")
	serveCmd.Flags().StringVar(&serveBenchmarks, "benchmarks", "", "Path to a role benchmark JSON file (default: built-in table)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Flags win over the config file, the config file wins over defaults
	fileCfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = loaded
	}

	flagCfg := config.Config{
		Port:           servePort,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		BenchmarksPath: serveBenchmarks,
	}
	merged := flagCfg.MergeWithDefaults(*fileCfg)
	merged = merged.MergeWithDefaults(config.Config{Port: 8080})

	if merged.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable (or database_url in the config file) is required")
	}

	cfg := server.Config{
		Port:            merged.Port,
		DatabaseURL:     merged.DatabaseURL,
		BenchmarksPath:  merged.BenchmarksPath,
		RateLimitPerMin: merged.RateLimitPerMin,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
