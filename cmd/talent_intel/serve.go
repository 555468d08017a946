package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-intel/internal/logger"
	"github.com/jonathan/talent-intel/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveJSONLog    bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resume batches and adjusting weights by feedback.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", true, "Emit JSON logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Debug-level logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log, err := logger.New(serveJSONLog || cfg.JSONLog, serveDebug || cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runner, closeClient, err := buildRunner(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeClient()

	srv := server.New(server.Config{
		Port:           servePort,
		DefaultWeights: cfg.InitialWeights(),
		UseBrowser:     cfg.UseBrowser,
	}, runner, log)

	return srv.Start()
}
