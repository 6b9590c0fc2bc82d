package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/server"
	"github.com/jonathan/cv-builder/internal/suggestions"
)

var (
	servePort       int
	serveConfigPath string
	serveTemplate   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, validating, rendering, and requesting suggestions for CV documents.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveTemplate, "template", "", "Default render template")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Precedence: flags > config file > environment.
	cfg := config.Config{
		Port:            servePort,
		DefaultTemplate: serveTemplate,
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:       os.Getenv("OPENAI_API_KEY"),
		Organization: os.Getenv("OPENAI_ORGANIZATION"),
		BaseURL:      os.Getenv("OPENAI_BASE_URL"),
		Port:         8080,
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port: cfg.Port,
		Suggestions: &suggestions.Config{
			APIKey:       cfg.APIKey,
			Organization: cfg.Organization,
			BaseURL:      cfg.BaseURL,
			Model:        cfg.Model,
		},
		DefaultTemplate: cfg.DefaultTemplate,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
