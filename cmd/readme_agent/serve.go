package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amarzeus/readme-studio/internal/config"
	"github.com/amarzeus/readme-studio/internal/observability"
	"github.com/amarzeus/readme-studio/internal/server"
)

var (
	servePort    int
	serveDataDir string
	serveConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for README generation, preview rendering, document history, and preferences.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for the SQLite database (default ./data)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		DataDir: cfg.DataDir,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig layers environment variables over an optional config file.
func resolveConfig(path string) (config.Config, error) {
	cfg := *config.FromEnv()
	if path == "" {
		return cfg, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(*fileCfg), nil
}
