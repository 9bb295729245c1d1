// Package draw defines the immediate-mode drawing surface used by the layout
// engine. Coordinates are millimetres from the top-left corner of the page.
package draw

import (
	"image"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

// Text is one already wrapped line of text. Y is the top of the line box.
type Text struct {
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Content string         `json:"content"`
	Role    templates.Role `json:"role"`
	Font    templates.Font `json:"font"`
}

// Line is a straight stroke.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// Rect is an axis aligned rectangle. Empty colours are not painted.
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Image places a decoded image in a box.
type Image struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Source image.Image `json:"-"`
}

// Surface is an immediate-mode output. Calls are applied to the current page
// until NewPage starts the next one. Finish produces the final bytes; it is
// called once and no partial output is returned on error.
type Surface interface {
	DrawText(t Text)
	DrawLine(l Line)
	DrawRect(r Rect)
	DrawImage(img Image) error
	NewPage()
	Finish() ([]byte, error)
}

// Metrics is implemented by surfaces that know exact glyph advances.
type Metrics interface {
	TextWidth(text string, font templates.Font) (float64, error)
}
