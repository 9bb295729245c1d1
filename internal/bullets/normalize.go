// Package bullets turns free-form multi-line text into bullet and paragraph items.
//
// Normalize is a one-shot transform over finished text. It does not track
// caret positions or keystrokes; that belongs to the editor.
package bullets

import "strings"

// markers are the leading characters that make a line a bullet.
var markers = []string{"-", "•", "*", "–"}

// Item is one normalized line.
type Item struct {
	Indent bool   `json:"indent"` // true for bullets
	Text   string `json:"text"`
}

// Normalize splits raw on newlines and classifies each non-empty line. A line
// whose trimmed text starts with a marker is a bullet with the marker
// stripped; any other line is a paragraph. Empty lines and lines holding only
// markers are dropped.
func Normalize(raw string) []Item {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var items []Item
	for _, line := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		text, bullet := stripMarkers(text)
		if text == "" {
			continue
		}
		items = append(items, Item{Indent: bullet, Text: text})
	}
	return items
}

// stripMarkers removes every leading marker so the result never starts with one.
func stripMarkers(text string) (string, bool) {
	bullet := false
	for {
		stripped := false
		for _, m := range markers {
			if strings.HasPrefix(text, m) {
				text = strings.TrimSpace(text[len(m):])
				bullet = true
				stripped = true
				break
			}
		}
		if !stripped {
			return text, bullet
		}
	}
}

// Render writes items back as text: bullets as "- text", paragraphs verbatim.
// Normalize(Render(items)) returns items unchanged for any Normalize output.
func Render(items []Item) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if item.Indent {
			sb.WriteString("- ")
		}
		sb.WriteString(item.Text)
	}
	return sb.String()
}

// Texts returns the text of each item.
func Texts(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}
