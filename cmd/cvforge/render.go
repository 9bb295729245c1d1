package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/config"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/engine"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/observability"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

// Output formats accepted by --format.
const (
	formatPDF        = "pdf"
	formatLayoutJSON = "layout-json"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV document to PDF",
	Long: "Renders a CV JSON document with the selected template. Section order and visibility come from --sections; " +
		"invalid input fields are repaired and reported as warnings.",
	RunE: runRender,
}

var (
	renderInput      string
	renderSections   string
	renderTemplate   string
	renderPhoto      bool
	renderOutput     string
	renderFormat     string
	renderAll        bool
	renderConfigFile string
	renderTimeout    time.Duration
	renderCount      bool
	renderVerbose    bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to CV JSON document (required)")
	renderCmd.Flags().StringVarP(&renderSections, "sections", "s", "", "Path to section configuration JSON")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (see 'cvforge templates')")
	renderCmd.Flags().BoolVar(&renderPhoto, "photo", false, "Draw the profile photo when the document has one")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file or directory (default: current directory)")
	renderCmd.Flags().StringVar(&renderFormat, "format", formatPDF, "Output format: pdf or layout-json")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every built-in template")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", 0, "Timeout for markup templates (default from config)")
	renderCmd.Flags().BoolVar(&renderCount, "count-pages", false, "Count pages of markup output with pdfinfo or gs")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(renderConfigFile)
	if err != nil {
		return err
	}
	applyRenderFlags(cmd, &cfg)

	if renderFormat != formatPDF && renderFormat != formatLayoutJSON {
		return fmt.Errorf("invalid format %q: must be %s or %s", renderFormat, formatPDF, formatLayoutJSON)
	}

	doc, docIssues, err := readDocument(renderInput)
	if err != nil {
		return err
	}
	specs, specIssues, err := readSections(renderSections)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	printer := observability.NewPrinter(stderr)
	if cfg.Verbose {
		printer.PrintIssues("SCHEMA", append(docIssues, specIssues...))
		printer.PrintSections(sections.Build(doc, specs))
	} else {
		for _, issue := range specIssues {
			fmt.Fprintf(stderr, "Warning: %v\n", issue)
		}
	}

	registry := templates.Builtin()
	ids := []string{cfg.Template}
	if renderAll {
		ids = registry.IDs()
	}

	opts := engine.Options{
		Config:     cfg,
		Logger:     newLogger(stderr, cfg.Verbose),
		Registry:   registry,
		CountPages: renderCount,
	}
	if renderFormat == formatLayoutJSON {
		opts.Surface = engine.RecorderSurface
		var immediate []string
		for _, id := range ids {
			if registry.Resolve(id).Family == templates.FamilyImmediate {
				immediate = append(immediate, id)
			}
		}
		if len(immediate) == 0 {
			return fmt.Errorf("format %s is only available for immediate templates", formatLayoutJSON)
		}
		ids = immediate
	}

	results := make([]*engine.Result, len(ids))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, id := range ids {
		g.Go(func() error {
			res, err := engine.New(opts).Render(ctx, engine.Request{
				Document:     doc,
				Sections:     specs,
				TemplateID:   id,
				IncludePhoto: cfg.IncludePhoto,
			})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		path, err := outputPath(renderOutput, res, renderAll, renderFormat)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, res.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if cfg.Verbose {
			printer.PrintResult(res, path)
		} else {
			for _, w := range res.Warnings {
				fmt.Fprintf(stderr, "Warning: %v\n", w)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %s to %s\n", res.Template, path)
	}
	return nil
}

// applyRenderFlags lets explicitly set flags override cfg.
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("template") {
		cfg.Template = renderTemplate
	}
	if renderTimeout > 0 {
		cfg.RenderTimeout = renderTimeout.String()
	}
	cfg.IncludePhoto = cfg.IncludePhoto || renderPhoto
	cfg.Verbose = cfg.Verbose || renderVerbose
}

// outputPath picks the file to write. out names a file when it carries the
// format's extension and a single template is rendered; otherwise it is a
// directory, created if needed.
func outputPath(out string, res *engine.Result, all bool, format string) (string, error) {
	ext := ".pdf"
	if format == formatLayoutJSON {
		ext = ".json"
	}
	base := strings.TrimSuffix(res.FileName, filepath.Ext(res.FileName))
	if all {
		base += "-" + res.Template
	}
	name := base + ext

	if out == "" {
		return name, nil
	}
	if !all && strings.EqualFold(filepath.Ext(out), ext) {
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		return out, nil
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return filepath.Join(out, name), nil
}
