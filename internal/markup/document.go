package markup

import (
	"context"
	"strings"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/bullets"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/photo"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

// Document is everything a markup template needs.
type Document struct {
	Name     string
	Headline string
	Contact  []string
	Sections []sections.Section
	Style    templates.Style
	Photo    *photo.Photo
}

// Renderer turns a Document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// NewDocument builds the view model shared by every markup engine.
func NewDocument(p types.Personal, secs []sections.Section, style templates.Style, ph *photo.Photo) Document {
	var contact []string
	for _, s := range []string{p.Email, p.Phone, p.LinkedIn} {
		if s = strings.TrimSpace(s); s != "" {
			contact = append(contact, s)
		}
	}
	return Document{
		Name:     p.Name(),
		Headline: strings.TrimSpace(p.Title),
		Contact:  contact,
		Sections: secs,
		Style:    style,
		Photo:    ph,
	}
}

// ItemGroup is a run of consecutive body items of the same kind.
type ItemGroup struct {
	List  bool
	Lines []string
}

// Group splits items into runs of bullets and runs of paragraphs, so
// templates can wrap bullets in a single list.
func Group(items []bullets.Item) []ItemGroup {
	var groups []ItemGroup
	for _, it := range items {
		if n := len(groups); n > 0 && groups[n-1].List == it.Indent {
			groups[n-1].Lines = append(groups[n-1].Lines, it.Text)
			continue
		}
		groups = append(groups, ItemGroup{List: it.Indent, Lines: []string{it.Text}})
	}
	return groups
}
