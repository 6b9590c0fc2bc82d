// Package main provides the entry point for the CV Builder CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_builder",
	Short: "CV Builder HTTP API Server",
	Long:  "CV Builder edits structured CV documents, renders them through a catalog of HTML templates, and proxies AI improvement suggestions via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
