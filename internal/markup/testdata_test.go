package markup

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/photo"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

func sampleCV() *types.CVDocument {
	return &types.CVDocument{
		Personal: types.Personal{
			FirstName: "Jane",
			LastName:  "Doe",
			Title:     "Platform Engineer",
			Email:     "jane@example.com",
			LinkedIn:  "linkedin.com/in/janedoe",
		},
		Experience: []types.Experience{
			{Title: "Engineer", Organization: "Acme & Sons", Start: "2020-01", Current: true, Body: "Owned the billing platform.\n- Built X\n- Shipped Y"},
		},
		Education: []types.Education{{Degree: "BSc Mathematics", Institution: "UCL", Start: "2012", End: "2015"}},
	}
}

func sampleDocument(t *testing.T, styleID string, withPhoto bool) Document {
	t.Helper()
	cv := sampleCV()
	var ph *photo.Photo
	if withPhoto {
		ph = samplePhoto(t)
	}
	return NewDocument(cv.Personal, sections.Build(cv, nil), templates.Resolve(styleID), ph)
}

func samplePhoto(t *testing.T) *photo.Photo {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.Set(2, 2, color.RGBA{G: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	ph, err := photo.Decode(buf.Bytes())
	require.NoError(t, err)
	return ph
}
