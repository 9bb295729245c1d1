package main

import (
	"github.com/spf13/cobra"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/observability"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(templates.Builtin())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
