package layout

import (
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw"
)

// block is a measured, atomic group of primitives with coordinates relative
// to its top-left corner. The same block is used for the height passed to
// Flow.Reserve and for drawing, so the two cannot disagree.
type block struct {
	height float64
	texts  []draw.Text
	lines  []draw.Line
}

func (b *block) addText(t draw.Text) {
	b.texts = append(b.texts, t)
}

// stack places other below b.
func (b *block) stack(other block) {
	for _, t := range other.texts {
		t.Y += b.height
		b.texts = append(b.texts, t)
	}
	for _, l := range other.lines {
		l.Y1 += b.height
		l.Y2 += b.height
		b.lines = append(b.lines, l)
	}
	b.height += other.height
}

// emit draws the block with its origin at (x, y).
func (b block) emit(s draw.Surface, x, y float64) {
	for _, t := range b.texts {
		t.X += x
		t.Y += y
		s.DrawText(t)
	}
	for _, l := range b.lines {
		l.X1 += x
		l.X2 += x
		l.Y1 += y
		l.Y2 += y
		s.DrawLine(l)
	}
}
