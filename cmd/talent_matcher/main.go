// Package main implements the talent_matcher CLI for scoring candidate
// profiles against project requirements.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "talent_matcher",
	Short: "Rank candidate talent profiles against project requirements",
	Long:  "talent_matcher computes multi-factor compatibility scores between candidate profiles and project requirements, producing fully explainable, weighted score reports.",
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the process logger; debug level when --verbose is set.
func newLogger() (*zap.Logger, error) {
	if rootVerbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
