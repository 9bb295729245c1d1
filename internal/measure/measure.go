// Package measure estimates wrapped line counts and heights of text.
//
// The same Wrap rule is used for measuring and for drawing: layout draws the
// exact lines Measure returned, so page-break decisions match the output.
package measure

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

// WidthFunc returns the advance width of text in millimetres for font.
// Backends with real glyph metrics supply one.
type WidthFunc func(text string, font templates.Font) (float64, error)

// ApproximationWarning reports that estimated widths replaced glyph metrics.
// It is logged, never returned to callers.
type ApproximationWarning struct {
	Cause error
}

func (w *ApproximationWarning) Error() string {
	if w.Cause != nil {
		return fmt.Sprintf("measurement approximated: %v", w.Cause)
	}
	return "measurement approximated: no glyph metrics available"
}

func (w *ApproximationWarning) Unwrap() error {
	return w.Cause
}

// Metrics is the result of measuring one string.
type Metrics struct {
	LineCount int
	Height    float64
	Lines     []string
}

// Measurer measures and wraps text. It is safe for use by one render pass.
type Measurer struct {
	width  WidthFunc
	logger *log.Logger
	once   sync.Once
}

// New creates a Measurer. width may be nil, in which case every width is
// estimated. logger may be nil.
func New(width WidthFunc, logger *log.Logger) *Measurer {
	return &Measurer{width: width, logger: logger}
}

// Measure wraps text to maxWidth and reports its line count and height.
// Empty text measures as zero lines and zero height.
func (m *Measurer) Measure(text string, font templates.Font, maxWidth float64) Metrics {
	lines := m.Wrap(text, font, maxWidth)
	if len(lines) == 0 {
		return Metrics{}
	}
	return Metrics{
		LineCount: len(lines),
		Height:    float64(len(lines)) * font.LineHeight(),
		Lines:     lines,
	}
}

// LineHeight returns the height of one line of font.
func (m *Measurer) LineHeight(font templates.Font) float64 {
	return font.LineHeight()
}

// TextWidth returns the width of a single unwrapped line.
func (m *Measurer) TextWidth(text string, font templates.Font) float64 {
	if text == "" {
		return 0
	}
	if m.width != nil {
		w, err := m.width(text, font)
		if err == nil {
			return w
		}
		m.warn(&ApproximationWarning{Cause: err})
	} else {
		m.warn(&ApproximationWarning{})
	}
	return ApproxWidth(text, font)
}

func (m *Measurer) warn(w *ApproximationWarning) {
	m.once.Do(func() {
		if m.logger != nil {
			m.logger.Printf("[MEASURE] %v", w)
		}
	})
}

// Wrap breaks text into lines no wider than maxWidth. Lines break at
// whitespace; runs of whitespace collapse to one space; a word wider than
// maxWidth is split between runes. Explicit newlines start a new line and
// blank lines are dropped. maxWidth <= 0 disables wrapping.
func (m *Measurer) Wrap(text string, font templates.Font, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		if maxWidth <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}

		current := ""
		for _, word := range words {
			if m.TextWidth(word, font) > maxWidth {
				if current != "" {
					lines = append(lines, current)
				}
				chunks := m.splitWord(word, font, maxWidth)
				lines = append(lines, chunks[:len(chunks)-1]...)
				current = chunks[len(chunks)-1]
				continue
			}
			if current == "" {
				current = word
				continue
			}
			candidate := current + " " + word
			if m.TextWidth(candidate, font) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// splitWord cuts a word into chunks that each fit maxWidth. A single rune
// wider than maxWidth still forms its own chunk.
func (m *Measurer) splitWord(word string, font templates.Font, maxWidth float64) []string {
	var chunks []string
	var sb strings.Builder
	for _, r := range word {
		if sb.Len() > 0 && m.TextWidth(sb.String()+string(r), font) > maxWidth {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		sb.WriteRune(r)
	}
	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}
	return chunks
}
