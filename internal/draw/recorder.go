package draw

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OpKind names a recorded primitive.
type OpKind string

const (
	OpText  OpKind = "text"
	OpLine  OpKind = "line"
	OpRect  OpKind = "rect"
	OpImage OpKind = "image"
	OpPage  OpKind = "page_break"
)

// Op is one recorded drawing call. Page is zero based.
type Op struct {
	Kind  OpKind `json:"kind"`
	Page  int    `json:"page"`
	Text  *Text  `json:"text,omitempty"`
	Line  *Line  `json:"line,omitempty"`
	Rect  *Rect  `json:"rect,omitempty"`
	Image *Image `json:"image,omitempty"`
}

// Recording is the JSON document produced by Recorder.Finish.
type Recording struct {
	PageWidth  float64 `json:"pageWidth"`
	PageHeight float64 `json:"pageHeight"`
	Pages      int     `json:"pages"`
	Ops        []Op    `json:"ops"`
}

// Recorder is a Surface that keeps every primitive in memory and finishes
// as JSON. It backs the layout-json output format and tests.
type Recorder struct {
	width  float64
	height float64
	page   int
	ops    []Op
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a recorder for pages of the given size in millimetres.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) DrawText(t Text) {
	r.ops = append(r.ops, Op{Kind: OpText, Page: r.page, Text: &t})
}

func (r *Recorder) DrawLine(l Line) {
	r.ops = append(r.ops, Op{Kind: OpLine, Page: r.page, Line: &l})
}

func (r *Recorder) DrawRect(rc Rect) {
	r.ops = append(r.ops, Op{Kind: OpRect, Page: r.page, Rect: &rc})
}

func (r *Recorder) DrawImage(img Image) error {
	if img.Source == nil {
		return fmt.Errorf("image has no source")
	}
	r.ops = append(r.ops, Op{Kind: OpImage, Page: r.page, Image: &img})
	return nil
}

func (r *Recorder) NewPage() {
	r.page++
	r.ops = append(r.ops, Op{Kind: OpPage, Page: r.page})
}

// Finish returns the recording as indented JSON.
func (r *Recorder) Finish() ([]byte, error) {
	data, err := json.MarshalIndent(Recording{
		PageWidth:  r.width,
		PageHeight: r.height,
		Pages:      r.Pages(),
		Ops:        r.ops,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode recording: %w", err)
	}
	return data, nil
}

// Ops returns the recorded primitives.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Pages returns the number of pages drawn so far.
func (r *Recorder) Pages() int {
	return r.page + 1
}

// Texts returns every recorded text primitive in drawing order.
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// FindText returns the first text primitive whose content equals s.
func (r *Recorder) FindText(s string) (Op, bool) {
	for _, op := range r.ops {
		if op.Kind == OpText && op.Text.Content == s {
			return op, true
		}
	}
	return Op{}, false
}

// PlainText joins every text primitive, one per line.
func (r *Recorder) PlainText() string {
	var sb strings.Builder
	for _, op := range r.Texts() {
		sb.WriteString(op.Text.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}
