package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV document",
	Long:  "Checks a CVData JSON file against the document schema, then prints the advisory field report.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "input", "i", "", "Path to CVData JSON file (required)")
	_ = validateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateCVData(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Println("Schema validation failed:")
			for _, fieldErr := range validationErr.Errors {
				fmt.Printf("  %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("%d schema violation(s)", len(validationErr.Errors))
		}
		return err
	}

	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	report := validation.CheckDocument(&cv)
	if report.Clean() {
		fmt.Println("Document is valid with no advisory warnings.")
		return nil
	}

	fmt.Println("Document is valid. Advisory warnings:")
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
