// Package schemas embeds the JSON Schemas for cvforge input files.
package schemas

import (
	"embed"
	"fmt"
	"strings"
)

// Schema file names.
const (
	CVDocument   = "cv_document.schema.json"
	SectionSpecs = "section_specs.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the content of an embedded schema.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unknown schema %s (available: %s): %w", name, strings.Join(Names(), ", "), err)
	}
	return string(data), nil
}

// Names lists every embedded schema.
func Names() []string {
	entries, _ := files.ReadDir(".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
