// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/markup"
)

// Defaults used when neither the config file, the environment nor a flag
// sets a value.
const (
	DefaultTemplate      = "professional"
	DefaultRenderTimeout = 60 * time.Second
)

// Environment variables read by FromEnv.
const (
	EnvTemplate      = "CVFORGE_TEMPLATE"
	EnvChromePath    = "CVFORGE_CHROME_PATH"
	EnvLaTeXCommand  = "CVFORGE_LATEX_COMMAND"
	EnvTempDir       = "CVFORGE_TEMP_DIR"
	EnvRenderTimeout = "CVFORGE_RENDER_TIMEOUT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Template      string `json:"template,omitempty"`       // Template id, e.g. "modern"
	ChromePath    string `json:"chrome_path,omitempty"`    // Chrome/Chromium binary for HTML templates
	LaTeXCommand  string `json:"latex_command,omitempty"`  // LaTeX compiler for the classic template
	TempDir       string `json:"temp_dir,omitempty"`       // Root for per-render workspaces
	RenderTimeout string `json:"render_timeout,omitempty"` // Go duration, e.g. "60s"
	IncludePhoto  bool   `json:"include_photo,omitempty"`  // Draw the profile photo when present
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Template:      DefaultTemplate,
		LaTeXCommand:  markup.DefaultLaTeXCommand,
		RenderTimeout: DefaultRenderTimeout.String(),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the CVFORGE_* environment variables. Unset variables leave
// fields empty so the result can be merged like a config file.
func FromEnv() Config {
	return Config{
		Template:      os.Getenv(EnvTemplate),
		ChromePath:    os.Getenv(EnvChromePath),
		LaTeXCommand:  os.Getenv(EnvLaTeXCommand),
		TempDir:       os.Getenv(EnvTempDir),
		RenderTimeout: os.Getenv(EnvRenderTimeout),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.RenderTimeout != "" {
		d, err := time.ParseDuration(c.RenderTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'render_timeout' %q: %w", c.RenderTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'render_timeout' must be positive")
		}
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	if c.TempDir != "" {
		if info, err := os.Stat(c.TempDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'temp_dir' is not a directory: %s", c.TempDir)
		}
	}

	return nil
}

// Timeout returns the render timeout, or DefaultRenderTimeout when unset or
// invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RenderTimeout)
	if err != nil || d <= 0 {
		return DefaultRenderTimeout
	}
	return d
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to layer config file, environment and built-in values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.LaTeXCommand == "" {
		result.LaTeXCommand = defaults.LaTeXCommand
	}
	if result.TempDir == "" {
		result.TempDir = defaults.TempDir
	}
	if result.RenderTimeout == "" {
		result.RenderTimeout = defaults.RenderTimeout
	}

	// Bool fields: cannot distinguish unset from false, so true wins
	result.IncludePhoto = result.IncludePhoto || defaults.IncludePhoto
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
