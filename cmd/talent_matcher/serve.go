package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring HTTP API server",
	Long:  "Starts the HTTP JSON API exposing /score and /match on top of the scoring engine.",
	RunE:  runServe,
}

var (
	serveAddr    string
	serveWorkers int
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 0, "Worker pool size per match request (GOMAXPROCS if 0)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if envAddr := os.Getenv("TALENT_MATCHER_ADDR"); envAddr != "" && serveAddr == ":8080" {
		serveAddr = envAddr
	}

	srv := server.New(server.Config{Addr: serveAddr, Concurrency: serveWorkers}, log)
	return srv.Start()
}
