// Package templates resolves template identifiers to immutable style bundles.
package templates

import "maps"

// Unit conversions. Layout works in millimetres, fonts are sized in points.
const (
	PtToMm = 25.4 / 72.0
	MmToPt = 72.0 / 25.4
)

// A4 page dimensions in millimetres.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// Family selects the top-level rendering strategy of a template.
type Family string

const (
	// FamilyImmediate draws positioned primitives with explicit page breaks.
	FamilyImmediate Family = "immediate"
	// FamilyMarkup fills a markup template and hands it to an external engine that paginates itself.
	FamilyMarkup Family = "markup"
)

// MarkupEngine names the external renderer used by markup templates.
type MarkupEngine string

const (
	EngineChrome MarkupEngine = "chrome"
	EngineLaTeX  MarkupEngine = "latex"
)

// Role is the typographic role of a piece of text.
type Role string

const (
	RoleName          Role = "name"
	RoleHeadline      Role = "headline"
	RoleContact       Role = "contact"
	RoleSectionTitle  Role = "section_title"
	RoleEntryTitle    Role = "entry_title"
	RoleEntrySubtitle Role = "entry_subtitle"
	RoleDate          Role = "date"
	RoleBody          Role = "body"
)

// Font describes how text of one role is set.
type Font struct {
	SizePt      float64
	Color       string // hex, e.g. "#043e44"
	Bold        bool
	Italic      bool
	LineSpacing float64 // multiple of the font size
}

// LineHeight returns the height of one wrapped line in millimetres.
func (f Font) LineHeight() float64 {
	spacing := f.LineSpacing
	if spacing <= 0 {
		spacing = 1.2
	}
	return f.SizePt * PtToMm * spacing
}

// Page holds the page size and margins in millimetres.
type Page struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// ContentWidth is the horizontal space between the margins.
func (p Page) ContentWidth() float64 {
	return p.Width - p.MarginLeft - p.MarginRight
}

// UsableHeight is the vertical space between the margins.
func (p Page) UsableHeight() float64 {
	return p.Height - p.MarginTop - p.MarginBottom
}

// Bottom is the lowest y coordinate content may reach.
func (p Page) Bottom() float64 {
	return p.Height - p.MarginBottom
}

// Spacing holds the fixed gaps of a template in millimetres. Each value is
// reused for every structurally equivalent gap.
type Spacing struct {
	AfterHeader     float64
	AfterTitle      float64
	BetweenEntries  float64
	BetweenSections float64
	BulletIndent    float64
}

// Style is the resolved bundle for one template.
type Style struct {
	ID        string
	Name      string
	Family    Family
	Engine    MarkupEngine // markup family only
	Page      Page
	Fonts     map[Role]Font
	Spacing   Spacing
	Accent    string  // hex colour for rules and highlights
	RuleWidth float64 // separator line width in mm
	PhotoSize float64 // square photo edge in mm
}

// Font returns the font for role, falling back to the body font.
func (s Style) Font(role Role) Font {
	if f, ok := s.Fonts[role]; ok {
		return f
	}
	return s.Fonts[RoleBody]
}

// clone returns a copy that shares no mutable state with s.
func (s Style) clone() Style {
	s.Fonts = maps.Clone(s.Fonts)
	return s
}
