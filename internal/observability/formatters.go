// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/engine"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// wrap splits s into rows of at most n runes, breaking at spaces where it
// can. Continuation rows keep the leading indentation of s.
func wrap(s string, n int) []string {
	indent := s[:len(s)-len(strings.TrimLeft(s, " "))]
	if len(indent) >= n/2 {
		indent = ""
	}

	var rows []string
	for utf8.RuneCountInString(s) > n {
		r := []rune(s)
		cut := n
		for i := n; i > len(indent); i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		rows = append(rows, strings.TrimRight(string(r[:cut]), " "))
		s = indent + strings.TrimLeft(string(r[cut:]), " ")
	}
	return append(rows, s)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, row := range wrap(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, row)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs the ordered section outline that will be rendered.
func (p *Printer) PrintSections(secs []sections.Section) {
	if len(secs) == 0 {
		p.printBox("SECTIONS", "(header only)")
		return
	}

	var sb strings.Builder
	for i, sec := range secs {
		fmt.Fprintf(&sb, "%d. %s (%d)\n", i+1, sec.Title, len(sec.Entries))
		count := min(len(sec.Entries), maxItemsToShow)
		for _, entry := range sec.Entries[:count] {
			label := entry.Title
			if entry.Date != "" {
				label += "  " + entry.Date
			}
			fmt.Fprintf(&sb, "   • %s\n", label)
		}
		if len(sec.Entries) > maxItemsToShow {
			fmt.Fprintf(&sb, "   ... and %d more\n", len(sec.Entries)-maxItemsToShow)
		}
	}

	p.printBox("SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs a summary of a finished render.
func (p *Printer) PrintResult(res *engine.Result, path string) {
	if res == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Template: %s (%s)\n", res.Template, res.Family)
	if pages := res.Pages(); pages > 0 {
		fmt.Fprintf(&sb, "Pages:    %d\n", pages)
	} else {
		sb.WriteString("Pages:    unknown\n")
	}
	fmt.Fprintf(&sb, "Size:     %d bytes\n", len(res.Data))
	if path != "" {
		fmt.Fprintf(&sb, "Output:   %s\n", path)
	}

	if res.Output != nil && res.Output.Report != nil && len(res.Output.Report.Sections) > 0 {
		sb.WriteString("\nPlacement:\n")
		for _, pl := range res.Output.Report.Sections {
			fmt.Fprintf(&sb, "  %-16s p%d y=%.1f → p%d y=%.1f\n", pl.ID, pl.StartPage+1, pl.StartY, pl.EndPage+1, pl.EndY)
		}
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintf(&sb, "\nWarnings (%d):\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Fprintf(&sb, "  ! %v\n", w)
		}
	}

	p.printBox("RENDER SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs the templates known to reg.
func (p *Printer) PrintTemplates(reg *templates.Registry) {
	var sb strings.Builder
	for _, id := range reg.IDs() {
		style, _ := reg.Lookup(id)
		kind := string(style.Family)
		if style.Engine != "" {
			kind += "/" + string(style.Engine)
		}
		fmt.Fprintf(&sb, "%-14s %-18s", id, kind)
		if aliases := reg.Aliases(id); len(aliases) > 0 {
			fmt.Fprintf(&sb, " aliases: %s", strings.Join(aliases, ", "))
		}
		sb.WriteString("\n")
	}
	p.printBox("TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs validation problems under title.
func (p *Printer) PrintIssues(title string, issues []error) {
	if len(issues) == 0 {
		p.printBox(title, "✓ no issues")
		return
	}

	var sb strings.Builder
	for _, err := range issues {
		for _, line := range strings.Split(strings.TrimSpace(err.Error()), "\n") {
			fmt.Fprintf(&sb, "✗ %s\n", strings.TrimSpace(line))
		}
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
