package templates

// Canonical template identifiers.
const (
	Professional = "professional"
	Compact      = "compact"
	Modern       = "modern"
	Minimal      = "minimal"
	Classic      = "classic"
)

// DefaultID is the template used for empty, unknown and retired identifiers.
const DefaultID = Professional

// builtinAliases maps deprecated or informal identifiers to canonical ones.
var builtinAliases = map[string]string{
	"minimalist": Professional,
	"default":    Professional,
	"standard":   Professional,
	"latex":      Classic,
}

var a4 = Page{
	Width:        A4Width,
	Height:       A4Height,
	MarginTop:    15,
	MarginRight:  15,
	MarginBottom: 15,
	MarginLeft:   15,
}

func professionalStyle() Style {
	return Style{
		ID:     Professional,
		Name:   "Professional",
		Family: FamilyImmediate,
		Page:   a4,
		Fonts: map[Role]Font{
			RoleName:          {SizePt: 24, Color: "#043e44", Bold: true, LineSpacing: 1.15},
			RoleHeadline:      {SizePt: 14, Color: "#03d27c", LineSpacing: 1.3},
			RoleContact:       {SizePt: 10, Color: "#666666", LineSpacing: 1.4},
			RoleSectionTitle:  {SizePt: 14, Color: "#043e44", Bold: true, LineSpacing: 1.3},
			RoleEntryTitle:    {SizePt: 11, Color: "#043e44", Bold: true, LineSpacing: 1.35},
			RoleEntrySubtitle: {SizePt: 11, Color: "#03d27c", Italic: true, LineSpacing: 1.35},
			RoleDate:          {SizePt: 10, Color: "#666666", LineSpacing: 1.35},
			RoleBody:          {SizePt: 11, Color: "#333333", LineSpacing: 1.4},
		},
		Spacing: Spacing{
			AfterHeader:     6,
			AfterTitle:      3,
			BetweenEntries:  4,
			BetweenSections: 7,
			BulletIndent:    5,
		},
		Accent:    "#03d27c",
		RuleWidth: 0.6,
		PhotoSize: 30,
	}
}

func compactStyle() Style {
	return Style{
		ID:     Compact,
		Name:   "Compact",
		Family: FamilyImmediate,
		Page: Page{
			Width:        A4Width,
			Height:       A4Height,
			MarginTop:    10,
			MarginRight:  12,
			MarginBottom: 10,
			MarginLeft:   12,
		},
		Fonts: map[Role]Font{
			RoleName:          {SizePt: 18, Color: "#111111", Bold: true, LineSpacing: 1.1},
			RoleHeadline:      {SizePt: 11, Color: "#444444", LineSpacing: 1.2},
			RoleContact:       {SizePt: 9, Color: "#555555", LineSpacing: 1.25},
			RoleSectionTitle:  {SizePt: 11, Color: "#111111", Bold: true, LineSpacing: 1.2},
			RoleEntryTitle:    {SizePt: 10, Color: "#111111", Bold: true, LineSpacing: 1.2},
			RoleEntrySubtitle: {SizePt: 9.5, Color: "#444444", Italic: true, LineSpacing: 1.2},
			RoleDate:          {SizePt: 9, Color: "#555555", LineSpacing: 1.2},
			RoleBody:          {SizePt: 9.5, Color: "#222222", LineSpacing: 1.25},
		},
		Spacing: Spacing{
			AfterHeader:     4,
			AfterTitle:      1.5,
			BetweenEntries:  2.5,
			BetweenSections: 4,
			BulletIndent:    4,
		},
		Accent:    "#444444",
		RuleWidth: 0.3,
		PhotoSize: 22,
	}
}

// markupStyle builds a style for templates paginated by an external engine.
// Fonts and spacing are still populated so the markup can mirror them.
func markupStyle(id, name string, engine MarkupEngine, accent string) Style {
	s := professionalStyle()
	s.ID = id
	s.Name = name
	s.Family = FamilyMarkup
	s.Engine = engine
	s.Accent = accent
	return s
}

func builtinStyles() []Style {
	return []Style{
		professionalStyle(),
		compactStyle(),
		markupStyle(Modern, "Modern", EngineChrome, "#03d27c"),
		markupStyle(Minimal, "Minimal", EngineChrome, "#043e44"),
		markupStyle(Classic, "Classic", EngineLaTeX, "#000000"),
	}
}
