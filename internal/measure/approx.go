package measure

import (
	"unicode"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

// boldFactor widens bold text relative to regular glyphs.
const boldFactor = 1.07

// ApproxWidth estimates the width of text in millimetres from average
// per-class glyph advances of a proportional sans-serif face.
func ApproxWidth(text string, font templates.Font) float64 {
	em := 0.0
	for _, r := range text {
		em += runeAdvance(r)
	}
	if font.Bold {
		em *= boldFactor
	}
	return em * font.SizePt * templates.PtToMm
}

// runeAdvance returns an approximate advance in ems.
func runeAdvance(r rune) float64 {
	switch {
	case r == ' ':
		return 0.28
	case r == 'i' || r == 'l' || r == 'j' || r == '.' || r == ',' || r == '\'' ||
		r == '|' || r == '!' || r == ':' || r == ';' || r == 'I':
		return 0.26
	case r == 'f' || r == 't' || r == 'r' || r == '(' || r == ')' || r == '-':
		return 0.36
	case r == 'm' || r == 'w' || r == 'M' || r == 'W' || r == '@' || r == '%':
		return 0.84
	case unicode.IsDigit(r):
		return 0.55
	case unicode.IsUpper(r):
		return 0.66
	case unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hangul, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
		return 1.0
	default:
		return 0.52
	}
}
