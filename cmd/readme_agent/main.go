// Package main provides the entry point for the README Studio agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readme_agent",
	Short: "README Studio generation agent",
	Long:  "README Studio turns a structured developer profile into a polished GitHub profile README via the Gemini API, with a REST API and one-shot CLI commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
