package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/config"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/schemas"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

// loadSettings layers the config file, the environment and the built-in
// defaults. Flags are applied by each command afterwards.
func loadSettings(path string) (config.Config, error) {
	var file config.Config
	if path != "" {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		file = *cfg
	}

	env := config.FromEnv()
	merged := env.MergeWithDefaults(file)
	merged = merged.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// readDocument loads a CV document. Schema problems are returned as issues;
// only unreadable or unparsable files are errors.
func readDocument(path string) (*types.CVDocument, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CV file: %w", err)
	}

	var issues []error
	if err := schemas.ValidateDocument(data); err != nil {
		issues = append(issues, err)
	}

	var doc types.CVDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, issues, fmt.Errorf("failed to unmarshal CV JSON: %w", err)
	}
	return &doc, issues, nil
}

// readSections loads a section configuration; an empty path means defaults.
// A file that cannot be decoded is reported as an issue and also yields the
// defaults. Only an unreadable file is an error.
func readSections(path string) ([]types.SectionSpec, []error, error) {
	if path == "" {
		return nil, nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sections file: %w", err)
	}

	var issues []error
	if err := schemas.ValidateSections(data); err != nil {
		issues = append(issues, err)
	}

	var specs []types.SectionSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		issues = append(issues, &types.InputValidationError{
			Field:   "sections",
			Value:   path,
			Message: fmt.Sprintf("unusable section configuration, default order used: %v", err),
		})
		return nil, issues, nil
	}
	return specs, issues, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(w, "", log.LstdFlags)
}
