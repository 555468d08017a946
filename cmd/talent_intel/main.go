// Package main provides the entry point for the Talent Intel CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_intel",
	Short: "Explainable candidate scoring against job descriptions",
	Long:  "Talent Intel ranks candidate resumes against a job description by combining embedding similarity, skill overlap, and seniority alignment into an explainable 0-100 score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
