package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amarzeus/readme-studio/internal/render"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <markdown-file>",
	Short: "Render a markdown file to preview HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output path (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	html := render.Render(string(data))

	if renderOut == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	return nil
}
