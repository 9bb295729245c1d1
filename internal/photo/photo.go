// Package photo loads the optional profile picture of a CV.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"strings"

	_ "golang.org/x/image/webp"
)

// ErrNoPhoto is returned when the source is empty.
var ErrNoPhoto = errors.New("no photo")

// Photo is a decoded picture together with its original encoding.
type Photo struct {
	Image  image.Image
	Data   []byte
	Format string // png, jpeg, gif or webp
}

// MIME returns the media type of the original encoding.
func (p *Photo) MIME() string {
	return "image/" + p.Format
}

// Extension returns a file extension for the original encoding.
func (p *Photo) Extension() string {
	if p.Format == "jpeg" {
		return ".jpg"
	}
	return "." + p.Format
}

// DataURI encodes the original bytes for embedding in markup.
func (p *Photo) DataURI() string {
	return "data:" + p.MIME() + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// Load reads a photo from a data URI or a file path.
func Load(src string) (*Photo, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrNoPhoto
	}
	if strings.HasPrefix(src, "data:") {
		data, err := decodeDataURI(src)
		if err != nil {
			return nil, err
		}
		return Decode(data)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}
	return Decode(data)
}

// Decode parses image bytes in any supported format.
func Decode(data []byte) (*Photo, error) {
	if len(data) == 0 {
		return nil, ErrNoPhoto
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("photo has no pixels")
	}
	return &Photo{Image: img, Data: data, Format: format}, nil
}

func decodeDataURI(uri string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI")
	}
	if strings.HasSuffix(header, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("malformed base64 photo: %w", err)
		}
		return data, nil
	}
	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("malformed data URI: %w", err)
	}
	return []byte(data), nil
}
