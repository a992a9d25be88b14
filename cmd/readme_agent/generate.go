package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amarzeus/readme-studio/internal/llm"
	"github.com/amarzeus/readme-studio/internal/observability"
	"github.com/amarzeus/readme-studio/internal/pipeline"
	"github.com/amarzeus/readme-studio/internal/schemas"
	"github.com/amarzeus/readme-studio/internal/types"
)

var (
	generateProfile string
	generateOut     string
	generateConfig  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a README from a profile JSON file",
	Long: `Run one generation cycle outside the server: read a profile JSON file,
build the prompt, call the Gemini API once, and write the resulting
markdown to stdout or a file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProfile, "profile", "", "Path to the profile JSON file (required)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output path (default stdout)")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to a JSON config file")
	_ = generateCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	profile, warnings, err := loadProfile(generateProfile)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	client, err := llm.NewGeminiClient(cmd.Context(), cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close()

	doc, err := pipeline.New(client, logger).Generate(cmd.Context(), profile)
	if err != nil {
		return err
	}

	if generateOut == "" {
		fmt.Println(doc.Markdown)
		return nil
	}
	if err := os.WriteFile(generateOut, []byte(doc.Markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", generateOut, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", generateOut)
	return nil
}

// loadProfile reads, schema-checks, and decodes a profile file. URL warnings
// are returned alongside; they never block generation.
func loadProfile(path string) (*types.Profile, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	if err := schemas.ValidateProfileJSON(data); err != nil {
		return nil, nil, err
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	return &profile, profile.URLWarnings(), nil
}
