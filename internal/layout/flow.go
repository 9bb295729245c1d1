// Package layout places a résumé on fixed-size pages through a draw.Surface.
package layout

import (
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

const epsilon = 1e-6

// Cursor is the current drawing position. Page is zero based.
type Cursor struct {
	X    float64
	Y    float64
	Page int
}

// Flow owns the cursor for one layout pass and decides page breaks.
type Flow struct {
	page    templates.Page
	surface draw.Surface
	cursor  Cursor
}

// NewFlow starts at the top-left content corner of the first page.
func NewFlow(page templates.Page, surface draw.Surface) *Flow {
	return &Flow{
		page:    page,
		surface: surface,
		cursor:  Cursor{X: page.MarginLeft, Y: page.MarginTop},
	}
}

// Reserve makes room for a block of height h. If the block does not fit in
// what is left of the page and the cursor is not already at the top, a new
// page is started. A block taller than the usable height still begins on a
// fresh page and then overflows it. Reports whether a break happened.
func (f *Flow) Reserve(h float64) bool {
	if f.cursor.Y+h <= f.page.Bottom()+epsilon || f.AtTop() {
		return false
	}
	f.surface.NewPage()
	f.cursor.Page++
	f.cursor.Y = f.page.MarginTop
	return true
}

// Advance moves the cursor down by dy.
func (f *Flow) Advance(dy float64) {
	f.cursor.Y += dy
}

// MoveTo places the cursor at y on the current page.
func (f *Flow) MoveTo(y float64) {
	f.cursor.Y = y
}

func (f *Flow) Cursor() Cursor {
	return f.cursor
}

// AtTop reports whether nothing has been placed below the top margin yet.
func (f *Flow) AtTop() bool {
	return f.cursor.Y <= f.page.MarginTop+epsilon
}

// Usable is the height left on the current page.
func (f *Flow) Usable() float64 {
	return f.page.Bottom() - f.cursor.Y
}

// Pages is the number of pages started so far.
func (f *Flow) Pages() int {
	return f.cursor.Page + 1
}
