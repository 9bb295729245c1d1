package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/config"
)

const sampleCVJSON = `{
  "personal": {
    "firstName": "Jane",
    "lastName": "Doe",
    "title": "Platform Engineer",
    "email": "jane@example.com"
  },
  "summary": "Engineer focused on reliable billing systems.",
  "competencies": {"technical": ["Go", "PostgreSQL"], "soft": ["Mentoring"]},
  "experience": [
    {"title": "Engineer", "org": "Acme", "start": "2020-01", "current": true, "body": "- Built X\n- Shipped Y"}
  ],
  "education": [
    {"degree": "BSc Mathematics", "institution": "UCL", "start": "2012", "end": "2015"}
  ]
}`

// execute runs rootCmd in-process with fresh flag values and a clean
// CVFORGE_* environment.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{
		config.EnvTemplate, config.EnvChromePath, config.EnvLaTeXCommand,
		config.EnvTempDir, config.EnvRenderTimeout,
	} {
		t.Setenv(key, "")
	}
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
