package draw

import (
	"encoding/json"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

func TestRecorder_TracksPages(t *testing.T) {
	r := NewRecorder(templates.A4Width, templates.A4Height)
	r.DrawText(Text{X: 10, Y: 10, Content: "first", Role: templates.RoleName})
	r.NewPage()
	r.DrawLine(Line{X1: 10, Y1: 20, X2: 100, Y2: 20, Width: 0.5})
	r.DrawText(Text{X: 10, Y: 25, Content: "second"})

	assert.Equal(t, 2, r.Pages())

	first, ok := r.FindText("first")
	require.True(t, ok)
	assert.Equal(t, 0, first.Page)

	second, ok := r.FindText("second")
	require.True(t, ok)
	assert.Equal(t, 1, second.Page)

	_, ok = r.FindText("missing")
	assert.False(t, ok)
	assert.Equal(t, "first\nsecond\n", r.PlainText())
}

func TestRecorder_FinishEmitsJSON(t *testing.T) {
	r := NewRecorder(templates.A4Width, templates.A4Height)
	r.DrawRect(Rect{X: 1, Y: 2, Width: 3, Height: 4, Fill: "#000000"})
	require.NoError(t, r.DrawImage(Image{X: 5, Y: 5, Width: 20, Height: 20, Source: image.NewGray(image.Rect(0, 0, 4, 4))}))

	data, err := r.Finish()
	require.NoError(t, err)

	var rec Recording
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, templates.A4Width, rec.PageWidth)
	assert.Equal(t, 1, rec.Pages)
	require.Len(t, rec.Ops, 2)
	assert.Equal(t, OpRect, rec.Ops[0].Kind)
	assert.Equal(t, OpImage, rec.Ops[1].Kind)
	assert.Equal(t, 20.0, rec.Ops[1].Image.Width)
}

func TestRecorder_DrawImageWithoutSource(t *testing.T) {
	r := NewRecorder(templates.A4Width, templates.A4Height)
	assert.Error(t, r.DrawImage(Image{Width: 10, Height: 10}))
	assert.Empty(t, r.Ops())
}
