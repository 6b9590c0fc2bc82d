package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV document to HTML",
	Long:  "Renders a CVData JSON file through one of the catalog templates and writes the HTML document.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderTemplateID string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to CVData JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", rendering.DefaultTemplateID, "Template ID")
	renderCmd.Flags().StringVarP(&renderOutputFile, "output", "o", "", "Path to output HTML file (default stdout)")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateCVData(data); err != nil {
		return fmt.Errorf("input is not a valid CV document: %w", err)
	}

	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	html, err := rendering.Render(&cv, renderTemplateID)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if renderOutputFile == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.WriteFile(renderOutputFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Rendered %s with template %q to %s\n", renderInputFile, renderTemplateID, renderOutputFile)
	return nil
}
