package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/bullets"
)

var bulletsCmd = &cobra.Command{
	Use:   "bullets",
	Short: "Normalize free-form text read from stdin into bullets",
	Long: "Reads text from stdin. Lines starting with -, •, * or – become bullets with the marker removed; " +
		"other lines stay paragraphs and empty lines are dropped.",
	Args: cobra.NoArgs,
	RunE: runBullets,
}

var bulletsJSON bool

func init() {
	rootCmd.AddCommand(bulletsCmd)

	bulletsCmd.Flags().BoolVar(&bulletsJSON, "json", false, "Print the items as JSON")
}

func runBullets(cmd *cobra.Command, _ []string) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	items := bullets.Normalize(string(raw))

	out := cmd.OutOrStdout()
	if bulletsJSON {
		if items == nil {
			items = []bullets.Item{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	if len(items) > 0 {
		fmt.Fprintln(out, bullets.Render(items))
	}
	return nil
}
