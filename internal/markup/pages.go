package markup

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// CountPages counts the pages of a PDF with pdfinfo, falling back to
// ghostscript. The PDF is written to a temporary workspace under tempDir.
func CountPages(ctx context.Context, pdf []byte, tempDir string) (int, error) {
	ws, err := NewWorkspace(tempDir)
	if err != nil {
		return 0, err
	}
	defer ws.Close()

	path, err := ws.WriteFile("count.pdf", pdf)
	if err != nil {
		return 0, err
	}
	if count, err := countPagesWithPdfinfo(ctx, path); err == nil {
		return count, nil
	}
	if count, err := countPagesWithGhostscript(ctx, path); err == nil {
		return count, nil
	}
	return 0, fmt.Errorf("failed to count PDF pages: neither pdfinfo nor ghostscript is available")
}

func countPagesWithPdfinfo(ctx context.Context, path string) (int, error) {
	output, err := exec.CommandContext(ctx, "pdfinfo", path).Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo command failed: %w", err)
	}
	for _, line := range strings.Split(string(output), "\n") {
		if rest, ok := strings.CutPrefix(line, "Pages:"); ok {
			count, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return 0, fmt.Errorf("could not parse page count %q: %w", rest, err)
			}
			return count, nil
		}
	}
	return 0, fmt.Errorf("could not parse page count from pdfinfo output")
}

func countPagesWithGhostscript(ctx context.Context, path string) (int, error) {
	script := fmt.Sprintf("(%s) (r) file runpdfbegin pdfpagecount = quit", postScriptString(path))
	output, err := exec.CommandContext(ctx, "gs", "-q", "-dNODISPLAY", "--permit-file-read="+path, "-c", script).Output()
	if err != nil {
		return 0, fmt.Errorf("ghostscript command failed: %w", err)
	}
	out := strings.TrimSpace(string(output))
	count, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("could not parse page count from ghostscript output: %s", out)
	}
	return count, nil
}

// postScriptString escapes s for use inside a PostScript (...) literal.
func postScriptString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
}
