package markup

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
)

//go:embed tmpl/classic.tex
var classicTeX string

type margins struct {
	Top, Right, Bottom, Left float64
}

type latexView struct {
	Name      string
	Headline  string
	Contact   []string
	Sections  []sections.Section
	Accent    string
	PhotoFile string
	PhotoSize float64
	Margin    margins

	AfterHeader     float64
	AfterTitle      float64
	BetweenEntries  float64
	BetweenSections float64
	BulletIndent    float64
}

// RenderLaTeX fills the LaTeX template. photoFile is the name of the photo
// inside the compile directory, or empty.
func RenderLaTeX(doc Document, photoFile string) (string, error) {
	tmpl, err := template.New("classic").Delims("<<", ">>").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"group":  Group,
	}).Parse(classicTeX)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	st := doc.Style
	view := latexView{
		Name:      doc.Name,
		Headline:  doc.Headline,
		Contact:   doc.Contact,
		Sections:  doc.Sections,
		Accent:    strings.ToUpper(strings.TrimPrefix(cssColor6(st.Accent), "#")),
		PhotoFile: photoFile,
		PhotoSize: st.PhotoSize,
		Margin: margins{
			Top:    st.Page.MarginTop,
			Right:  st.Page.MarginRight,
			Bottom: st.Page.MarginBottom,
			Left:   st.Page.MarginLeft,
		},
		AfterHeader:     st.Spacing.AfterHeader,
		AfterTitle:      st.Spacing.AfterTitle,
		BetweenEntries:  st.Spacing.BetweenEntries,
		BetweenSections: st.Spacing.BetweenSections,
		BulletIndent:    st.Spacing.BulletIndent,
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// cssColor6 expands #rgb to #rrggbb, as xcolor's HTML model requires six digits.
func cssColor6(hex string) string {
	hex = cssColor(hex)
	if len(hex) == 4 {
		return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	return hex
}

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)
	for _, r := range text {
		switch r {
		case '\\':
			sb.WriteString(`\textbackslash{}`)
		case '^':
			sb.WriteString(`\textasciicircum{}`)
		case '~':
			sb.WriteString(`\textasciitilde{}`)
		case '{', '}', '$', '&', '%', '#', '_':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '•':
			sb.WriteString(`\textbullet{}`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
