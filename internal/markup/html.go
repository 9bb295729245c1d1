package markup

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

//go:embed tmpl/*.gohtml
var htmlFS embed.FS

// htmlLayouts maps a template id to its page file. Other ids use modern.
var htmlLayouts = map[string]string{
	templates.Modern:  "modern.gohtml",
	templates.Minimal: "minimal.gohtml",
}

type htmlView struct {
	Document
	PhotoSrc template.URL
	Accent   template.CSS
}

// RenderHTML fills the HTML template of doc.Style.
func RenderHTML(doc Document) (string, error) {
	layout, ok := htmlLayouts[doc.Style.ID]
	if !ok {
		layout = htmlLayouts[templates.Modern]
	}
	tmpl, err := template.New(layout).Funcs(template.FuncMap{
		"group": Group,
		"join":  strings.Join,
	}).ParseFS(htmlFS, "tmpl/body.gohtml", "tmpl/"+layout)
	if err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("failed to parse %s", layout), Cause: err}
	}

	view := htmlView{Document: doc, Accent: template.CSS(cssColor(doc.Style.Accent))}
	if doc.Photo != nil {
		// data URIs are trusted: they are produced by the photo package
		view.PhotoSrc = template.URL(doc.Photo.DataURI())
	}

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, layout, view); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// cssColor accepts #rgb or #rrggbb and falls back to black.
func cssColor(hex string) string {
	if (len(hex) == 4 || len(hex) == 7) && hex[0] == '#' && isHex(hex[1:]) {
		return hex
	}
	return "#000000"
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
