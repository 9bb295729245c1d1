package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/exec"
	"strings"
)

const (
	// DefaultLaTeXCommand is the compiler used when none is configured.
	DefaultLaTeXCommand = "pdflatex"

	texFile = "resume.tex"
	pdfFile = "resume.pdf"
)

// LaTeX compiles the LaTeX template with pdflatex.
type LaTeX struct {
	// Command is the compiler binary; DefaultLaTeXCommand when empty.
	Command string
	// TempDir is the root for per-render workspaces.
	TempDir string
	Logger  *log.Logger
}

func (l *LaTeX) command() string {
	if l.Command == "" {
		return DefaultLaTeXCommand
	}
	return l.Command
}

func (l *LaTeX) logf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
	}
}

// Render compiles doc in a fresh workspace and returns the PDF bytes.
// Cancelling ctx kills the compiler.
func (l *LaTeX) Render(ctx context.Context, doc Document) ([]byte, error) {
	cmdName := l.command()
	if _, err := exec.LookPath(cmdName); err != nil {
		return nil, &CompileError{
			Engine:  "latex",
			Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)", cmdName),
			Cause:   err,
		}
	}

	ws, err := NewWorkspace(l.TempDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			l.logf("[MARKUP] failed to remove workspace %s: %v", ws.Dir, err)
		}
	}()

	photoFile, err := writePhoto(ws, doc)
	if err != nil {
		return nil, err
	}
	source, err := RenderLaTeX(doc, photoFile)
	if err != nil {
		return nil, err
	}
	if _, err := ws.WriteFile(texFile, []byte(source)); err != nil {
		return nil, err
	}

	l.logf("[MARKUP] compiling %s with %s", ws.Path(texFile), cmdName)

	cmd := exec.CommandContext(ctx, cmdName, "-interaction=nonstopmode", "-halt-on-error", "-output-directory", ws.Dir, texFile)
	cmd.Dir = ws.Dir
	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	if runErr := cmd.Run(); runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			runErr = errors.Join(ctxErr, runErr)
		}
		return nil, &CompileError{
			Engine:  "latex",
			Message: "LaTeX compilation failed",
			Log:     output.String(),
			Cause:   runErr,
		}
	}

	pdf, err := os.ReadFile(ws.Path(pdfFile))
	if err != nil {
		return nil, &CompileError{
			Engine:  "latex",
			Message: "PDF was not generated",
			Log:     output.String(),
			Cause:   err,
		}
	}
	l.logf("[MARKUP] compiled %d bytes", len(pdf))
	return pdf, nil
}

// writePhoto stores the photo for \includegraphics. pdflatex reads PNG and
// JPEG only, so other formats are re-encoded as PNG.
func writePhoto(ws *Workspace, doc Document) (string, error) {
	ph := doc.Photo
	if ph == nil {
		return "", nil
	}
	switch ph.Format {
	case "png", "jpeg":
		name := "photo" + ph.Extension()
		_, err := ws.WriteFile(name, ph.Data)
		return name, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, ph.Image); err != nil {
		return "", fmt.Errorf("failed to re-encode photo: %w", err)
	}
	_, err := ws.WriteFile("photo.png", buf.Bytes())
	return "photo.png", err
}
