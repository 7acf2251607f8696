// Package main provides the entry point for the Linkup HTTP API server
// and matching CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkup",
	Short: "Linkup job matching platform",
	Long:  "Linkup connects candidates with job postings through a deterministic, rule-based matching engine, exposed via a REST API and a scoring CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
