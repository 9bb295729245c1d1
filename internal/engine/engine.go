// Package engine turns a CV document into a rendered file. One Engine serves
// one request; nothing is shared between requests.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/config"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/markup"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/photo"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Config   config.Config
	Logger   *log.Logger
	Registry *templates.Registry
	// Surface replaces the PDF surface of immediate-mode templates.
	Surface SurfaceFactory
	// Markup replaces the external renderer of a markup engine.
	Markup map[templates.MarkupEngine]markup.Renderer
	// CountPages asks external tools for the page count of markup output.
	CountPages bool
}

// Request is one render.
type Request struct {
	Document     *types.CVDocument
	Sections     []types.SectionSpec
	TemplateID   string
	IncludePhoto bool
}

// Result is a finished render.
type Result struct {
	Data     []byte
	FileName string
	Template string
	Family   templates.Family
	Output   *Output
	// Warnings are recovered problems: invalid input fields, a missing
	// photo, an unknown template id.
	Warnings []error
}

// Pages returns the page count, or zero when it is unknown.
func (r *Result) Pages() int {
	if r.Output == nil {
		return 0
	}
	return r.Output.Pages
}

// Engine renders CV documents.
type Engine struct {
	cfg      config.Config
	logger   *log.Logger
	registry *templates.Registry
	surface  SurfaceFactory
	markup   map[templates.MarkupEngine]markup.Renderer
	count    bool
}

// New creates an engine. A nil Logger discards log output.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	registry := opts.Registry
	if registry == nil {
		registry = templates.Builtin()
	}
	surface := opts.Surface
	if surface == nil {
		surface = PDFSurface
	}
	renderers := map[templates.MarkupEngine]markup.Renderer{
		templates.EngineChrome: &markup.Chrome{
			ExecPath: opts.Config.ChromePath,
			TempDir:  opts.Config.TempDir,
			Logger:   logger,
		},
		templates.EngineLaTeX: &markup.LaTeX{
			Command: opts.Config.LaTeXCommand,
			TempDir: opts.Config.TempDir,
			Logger:  logger,
		},
	}
	for k, r := range opts.Markup {
		renderers[k] = r
	}
	return &Engine{
		cfg:      opts.Config,
		logger:   logger,
		registry: registry,
		surface:  surface,
		markup:   renderers,
		count:    opts.CountPages,
	}
}

// Render validates the request, builds the sections and runs the backend of
// the resolved template. Input problems are repaired and reported as
// warnings; only backend failures are returned as errors.
func (e *Engine) Render(ctx context.Context, req Request) (*Result, error) {
	if req.Document == nil {
		return nil, &types.InputValidationError{Field: "document", Message: "document is required"}
	}
	doc := req.Document.Clone()

	var warnings []error
	for _, err := range types.Sanitize(doc) {
		e.logger.Printf("[RENDER] input: %v", err)
		warnings = append(warnings, err)
	}

	style, known := e.registry.Lookup(req.TemplateID)
	if !known {
		style = e.registry.Resolve(req.TemplateID)
		if req.TemplateID != "" {
			err := fmt.Errorf("unknown template %q, using %s", req.TemplateID, style.ID)
			e.logger.Printf("[RENDER] %v", err)
			warnings = append(warnings, err)
		}
	}

	job := &Job{
		Personal: doc.Personal,
		Sections: sections.Build(doc, req.Sections),
		Style:    style,
	}
	if req.IncludePhoto {
		ph, err := e.loadPhoto(doc.Personal.Photo)
		if err != nil {
			e.logger.Printf("[RENDER] %v", err)
			warnings = append(warnings, err)
		}
		job.Photo = ph
	}

	backend, err := e.backend(style)
	if err != nil {
		return nil, &BackendRenderError{Template: style.ID, Cause: err}
	}

	if style.Family == templates.FamilyMarkup {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout())
		defer cancel()
	}

	e.logger.Printf("[RENDER] template %s (%s), %d section(s)", style.ID, style.Family, len(job.Sections))
	out, err := backend.Render(ctx, job)
	if err != nil {
		return nil, &BackendRenderError{Template: style.ID, Cause: err}
	}
	warnings = append(warnings, out.Warnings...)

	return &Result{
		Data:     out.Data,
		FileName: types.FileName(doc.Personal) + ".pdf",
		Template: style.ID,
		Family:   style.Family,
		Output:   out,
		Warnings: warnings,
	}, nil
}

// loadPhoto returns nil without error when the document has no photo.
func (e *Engine) loadPhoto(src string) (*photo.Photo, error) {
	ph, err := photo.Load(src)
	if errors.Is(err, photo.ErrNoPhoto) {
		return nil, nil
	}
	if err != nil {
		return nil, &ResourceError{Resource: "photo", Message: "image omitted", Cause: err}
	}
	return ph, nil
}

func (e *Engine) backend(style templates.Style) (Backend, error) {
	switch style.Family {
	case templates.FamilyImmediate:
		return &immediateBackend{newSurface: e.surface, logger: e.logger}, nil
	case templates.FamilyMarkup:
		r, ok := e.markup[style.Engine]
		if !ok {
			return nil, fmt.Errorf("no renderer for markup engine %q", style.Engine)
		}
		return &markupBackend{renderer: r, tempDir: e.cfg.TempDir, logger: e.logger, countPages: e.count}, nil
	default:
		return nil, fmt.Errorf("unknown template family %q", style.Family)
	}
}
