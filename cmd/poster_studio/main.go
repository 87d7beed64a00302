// Package main provides the entry point for the Poster Studio CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "poster_studio",
	Short: "Job poster rendering engine",
	Long:  "Poster Studio renders print-ready A4 job posters from structured posting data, with auto-scaling layout, PDF/PNG export and a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
