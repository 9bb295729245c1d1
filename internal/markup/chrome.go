package markup

import (
	"context"
	"log"
	"os/exec"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches, as expected by Page.printToPDF.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// FindChrome returns the first Chrome or Chromium binary found in PATH.
func FindChrome() (string, bool) {
	for _, name := range chromeCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, true
		}
	}
	return "", false
}

// Chrome prints HTML templates to PDF with a headless browser.
type Chrome struct {
	// ExecPath overrides browser discovery when set.
	ExecPath string
	// TempDir is the root for per-render workspaces.
	TempDir string
	Logger  *log.Logger
}

func (c *Chrome) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// Render writes the filled template to a workspace and prints it. The
// workspace, including the browser profile, is removed before returning.
// Cancelling ctx stops the browser.
func (c *Chrome) Render(ctx context.Context, doc Document) ([]byte, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	ws, err := NewWorkspace(c.TempDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			c.logf("[MARKUP] failed to remove workspace %s: %v", ws.Dir, err)
		}
	}()

	indexPath, err := ws.WriteFile("index.html", []byte(html))
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserDataDir(ws.Path("profile")),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	c.logf("[MARKUP] printing %s with headless Chrome", indexPath)

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+indexPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, &CompileError{Engine: "chrome", Message: "failed to print PDF", Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &CompileError{Engine: "chrome", Message: "browser returned an empty PDF"}
	}

	c.logf("[MARKUP] printed %d bytes", len(pdf))
	return pdf, nil
}
