package types

import "strings"

// FileName returns the download name `{First}_{Last}_CV` with internal
// whitespace collapsed to underscores. Missing names fall back to "CV" and
// "Document".
func FileName(p Personal) string {
	first := strings.Join(strings.Fields(p.FirstName), "_")
	last := strings.Join(strings.Fields(p.LastName), "_")
	if first == "" {
		first = "CV"
	}
	if last == "" {
		last = "Document"
	}
	return first + "_" + last + "_CV"
}
