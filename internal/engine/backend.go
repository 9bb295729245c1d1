package engine

import (
	"context"
	"log"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw/canvaspdf"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/layout"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/markup"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/measure"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/photo"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

// Job is everything a backend needs for one render.
type Job struct {
	Personal types.Personal
	Sections []sections.Section
	Style    templates.Style
	Photo    *photo.Photo
}

// Output is what a backend produced. Pages is zero when unknown.
type Output struct {
	Data     []byte
	Pages    int
	Report   *layout.Report
	Warnings []error
}

// Backend renders a prepared job.
type Backend interface {
	Render(ctx context.Context, job *Job) (*Output, error)
}

// SurfaceFactory creates the drawing surface for an immediate-mode render.
type SurfaceFactory func(style templates.Style, info canvaspdf.Info) (draw.Surface, error)

// PDFSurface is the default SurfaceFactory.
func PDFSurface(style templates.Style, info canvaspdf.Info) (draw.Surface, error) {
	return canvaspdf.New(style.Page.Width, style.Page.Height, nil, info)
}

// RecorderSurface records primitives and finishes as layout JSON.
func RecorderSurface(style templates.Style, _ canvaspdf.Info) (draw.Surface, error) {
	return draw.NewRecorder(style.Page.Width, style.Page.Height), nil
}

// immediateBackend measures and draws through a draw.Surface.
type immediateBackend struct {
	newSurface SurfaceFactory
	logger     *log.Logger
}

func (b *immediateBackend) Render(_ context.Context, job *Job) (*Output, error) {
	surface, err := b.newSurface(job.Style, canvaspdf.Info{
		Title:   job.Personal.Name(),
		Subject: "Curriculum Vitae",
		Author:  job.Personal.Name(),
		Creator: "cvforge",
	})
	if err != nil {
		return nil, err
	}

	var width measure.WidthFunc
	if m, ok := surface.(draw.Metrics); ok {
		width = m.TextWidth
	}

	opts := layout.Options{
		Style:    job.Style,
		Measurer: measure.New(width, b.logger),
		Logger:   b.logger,
	}
	if job.Photo != nil {
		opts.Photo = job.Photo.Image
	}
	report := layout.New(surface, opts).Render(job.Personal, job.Sections)

	data, err := surface.Finish()
	if err != nil {
		return nil, err
	}

	out := &Output{Data: data, Pages: report.Pages, Report: &report}
	for _, w := range report.Warnings {
		out.Warnings = append(out.Warnings, &ResourceError{Resource: "photo", Message: "image omitted", Cause: w})
	}
	return out, nil
}

// markupBackend hands the ordered sections to an external engine.
type markupBackend struct {
	renderer markup.Renderer
	tempDir  string
	logger   *log.Logger

	// countPages asks pdfinfo/ghostscript for the page count.
	countPages bool
}

func (b *markupBackend) Render(ctx context.Context, job *Job) (*Output, error) {
	doc := markup.NewDocument(job.Personal, job.Sections, job.Style, job.Photo)
	data, err := b.renderer.Render(ctx, doc)
	if err != nil {
		return nil, err
	}

	out := &Output{Data: data}
	if b.countPages {
		pages, err := markup.CountPages(ctx, data, b.tempDir)
		if err != nil {
			b.logger.Printf("[RENDER] page count unavailable: %v", err)
		} else {
			out.Pages = pages
		}
	}
	return out, nil
}
