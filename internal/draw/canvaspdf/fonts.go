package canvaspdf

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

const familyName = "Latin Modern Roman"

var defaultColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

type faceKey struct {
	sizePt float64
	color  string
	style  canvas.FontStyle
}

// Faces loads the embedded Latin Modern family once and hands out cached
// font faces for template fonts.
type Faces struct {
	family *canvas.FontFamily

	mu    sync.Mutex
	cache map[faceKey]*canvas.FontFace
}

// LoadFaces parses the embedded font files.
func LoadFaces() (*Faces, error) {
	family := canvas.NewFontFamily(familyName)
	for _, f := range []struct {
		data  []byte
		style canvas.FontStyle
		name  string
	}{
		{lmroman10regular.TTF, canvas.FontRegular, "regular"},
		{lmroman10bold.TTF, canvas.FontBold, "bold"},
		{lmroman10italic.TTF, canvas.FontItalic, "italic"},
		{lmroman10bolditalic.TTF, canvas.FontBold | canvas.FontItalic, "bold italic"},
	} {
		if err := family.LoadFont(f.data, 0, f.style); err != nil {
			return nil, fmt.Errorf("failed to load %s %s: %w", familyName, f.name, err)
		}
	}
	return &Faces{family: family, cache: make(map[faceKey]*canvas.FontFace)}, nil
}

// Face returns the canvas face for a template font.
func (f *Faces) Face(font templates.Font) *canvas.FontFace {
	style := canvas.FontRegular
	if font.Bold {
		style |= canvas.FontBold
	}
	if font.Italic {
		style |= canvas.FontItalic
	}
	key := faceKey{sizePt: font.SizePt, color: font.Color, style: style}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.cache[key]; ok {
		return face
	}
	face := f.family.Face(font.SizePt, parseColor(font.Color), style, canvas.FontNormal)
	f.cache[key] = face
	return face
}

// TextWidth returns the advance of text in millimetres.
func (f *Faces) TextWidth(text string, font templates.Font) (float64, error) {
	if font.SizePt <= 0 {
		return 0, fmt.Errorf("invalid font size %.2f", font.SizePt)
	}
	return f.Face(font).TextWidth(text), nil
}

func parseColor(hex string) color.RGBA {
	if hex == "" {
		return defaultColor
	}
	return canvas.Hex(hex)
}
