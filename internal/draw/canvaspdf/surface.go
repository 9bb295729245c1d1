// Package canvaspdf implements draw.Surface on top of tdewolff/canvas and
// writes PDF output. Measurement and drawing share the same font faces.
package canvaspdf

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

const defaultStrokeWidth = 0.3

// Info is the PDF document metadata.
type Info struct {
	Title    string
	Subject  string
	Keywords string
	Author   string
	Creator  string
}

// Surface buffers one canvas per page and serialises them on Finish.
type Surface struct {
	width  float64
	height float64
	faces  *Faces
	info   Info

	pages []*canvas.Canvas
	ctx   *canvas.Context
}

var (
	_ draw.Surface = (*Surface)(nil)
	_ draw.Metrics = (*Surface)(nil)
)

// New creates a surface with pages of the given size in millimetres.
func New(width, height float64, faces *Faces, info Info) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid page size %.1fx%.1f", width, height)
	}
	if faces == nil {
		var err error
		if faces, err = LoadFaces(); err != nil {
			return nil, err
		}
	}
	s := &Surface{width: width, height: height, faces: faces, info: info}
	s.NewPage()
	return s, nil
}

// NewPage starts a fresh canvas. The first page is created by New.
func (s *Surface) NewPage() {
	c := canvas.New(s.width, s.height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	s.pages = append(s.pages, c)
	s.ctx = ctx
}

// TextWidth reports exact glyph advances for the measurer.
func (s *Surface) TextWidth(text string, font templates.Font) (float64, error) {
	return s.faces.TextWidth(text, font)
}

func (s *Surface) DrawText(t draw.Text) {
	if t.Content == "" {
		return
	}
	face := s.faces.Face(t.Font)
	baseline := t.Y + face.Metrics().Ascent
	s.ctx.DrawText(t.X, baseline, canvas.NewTextLine(face, t.Content, canvas.Left))
}

func (s *Surface) DrawLine(l draw.Line) {
	w := l.Width
	if w <= 0 {
		w = defaultStrokeWidth
	}
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(parseColor(l.Color))
	s.ctx.SetStrokeWidth(w)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(l.X2-l.X1, l.Y2-l.Y1)
	s.ctx.DrawPath(l.X1, l.Y1, p)
}

func (s *Surface) DrawRect(r draw.Rect) {
	fill := color.Color(canvas.Transparent)
	if r.Fill != "" {
		fill = canvas.Hex(r.Fill)
	}
	stroke := color.Color(canvas.Transparent)
	if r.Stroke != "" {
		stroke = canvas.Hex(r.Stroke)
	}
	w := r.StrokeWidth
	if w <= 0 {
		w = defaultStrokeWidth
	}
	s.ctx.SetFillColor(fill)
	s.ctx.SetStrokeColor(stroke)
	s.ctx.SetStrokeWidth(w)
	s.ctx.DrawPath(r.X, r.Y, canvas.Rectangle(r.Width, r.Height))
}

// DrawImage scales the image to the requested width.
func (s *Surface) DrawImage(img draw.Image) error {
	if img.Source == nil {
		return fmt.Errorf("image has no source")
	}
	px := img.Source.Bounds().Dx()
	if px <= 0 || img.Width <= 0 {
		return fmt.Errorf("image has no usable size")
	}
	s.ctx.DrawImage(img.X, img.Y, img.Source, canvas.DPMM(float64(px)/img.Width))
	return nil
}

// Finish renders every buffered page into a single PDF.
func (s *Surface) Finish() ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, s.width, s.height, nil)
	writer.SetInfo(s.info.Title, s.info.Subject, s.info.Keywords, s.info.Author, s.info.Creator)
	for i, c := range s.pages {
		if i > 0 {
			writer.NewPage(s.width, s.height)
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Pages returns the number of pages started so far.
func (s *Surface) Pages() int {
	return len(s.pages)
}
