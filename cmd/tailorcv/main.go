// Package main provides the tailorcv CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailorcv",
	Short: "Tailor a resume to a job description",
	Long:  "tailorcv selects the most relevant entries from a career profile for a specific job posting and emits a validated RenderCV document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
