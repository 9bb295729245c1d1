// Package markup renders CVs through external typesetting engines that do
// their own pagination: HTML printed by headless Chrome, and LaTeX compiled
// by pdflatex.
package markup

import "fmt"

// TemplateError represents an error parsing or executing a markup template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// CompileError represents a failure of the external engine. Log holds
// whatever the process printed.
type CompileError struct {
	Engine  string
	Message string
	Log     string
	Cause   error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Engine, e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}
