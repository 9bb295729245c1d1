package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/observability"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a CV document and section configuration",
	Long: "Validates the CV document against its JSON schema and reports every field the renderer would repair. " +
		"Exits with an error when any issue is found.",
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateInput    string
	validateSections string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to CV JSON document (required)")
	validateCmd.Flags().StringVarP(&validateSections, "sections", "s", "", "Path to section configuration JSON")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
}

func runValidate(cmd *cobra.Command, _ []string) error {
	doc, issues, err := readDocument(validateInput)
	if err != nil {
		return err
	}
	_, specIssues, err := readSections(validateSections)
	if err != nil {
		return err
	}
	issues = append(issues, specIssues...)

	repairs := types.Sanitize(doc)

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintIssues("SCHEMA", issues)
	printer.PrintIssues("REPAIRS", repairs)

	if n := len(issues) + len(repairs); n > 0 {
		return fmt.Errorf("found %d issue(s)", n)
	}
	return nil
}
