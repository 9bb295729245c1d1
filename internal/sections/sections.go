// Package sections turns a CVDocument and a section configuration into the
// ordered list of non-empty sections every backend renders.
package sections

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/bullets"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

// Entry is one job, degree, certificate, activity or labelled group.
type Entry struct {
	Title    string
	Subtitle string
	Date     string
	Items    []bullets.Item
}

// IsEmpty reports whether the entry has nothing to draw.
func (e Entry) IsEmpty() bool {
	return e.Title == "" && e.Subtitle == "" && e.Date == "" && len(e.Items) == 0
}

// Section is a titled, non-empty list of entries.
type Section struct {
	ID      types.SectionID
	Title   string
	Entries []Entry
}

// descriptor is everything that differs between section types.
type descriptor struct {
	title   string
	entries func(doc *types.CVDocument) []Entry
}

var descriptors = map[types.SectionID]descriptor{
	types.SectionSummary:         {title: "Professional Summary", entries: summaryEntries},
	types.SectionCompetencies:    {title: "Key Competencies", entries: competencyEntries},
	types.SectionExperience:      {title: "Professional Experience", entries: experienceEntries},
	types.SectionEducation:       {title: "Education", entries: educationEntries},
	types.SectionCertificates:    {title: "Certifications", entries: certificateEntries},
	types.SectionExtracurricular: {title: "Extracurricular Activities", entries: activityEntries},
	types.SectionAdditional:      {title: "Additional Information", entries: additionalEntries},
}

// Title returns the heading used for id.
func Title(id types.SectionID) string {
	return descriptors[id].title
}

// Order returns the visible section ids sorted by their order value. Unknown
// ids are ignored and the first spec of a duplicated id wins. When specs hold
// no known id at all the default ordering of all seven sections is used.
func Order(specs []types.SectionSpec) []types.SectionID {
	seen := make(map[types.SectionID]bool, len(specs))
	known := make([]types.SectionSpec, 0, len(specs))
	for _, spec := range specs {
		if !spec.ID.IsKnown() || seen[spec.ID] {
			continue
		}
		seen[spec.ID] = true
		known = append(known, spec)
	}
	if len(known) == 0 {
		known = types.DefaultSectionSpecs()
	}

	sort.SliceStable(known, func(i, j int) bool {
		return known[i].Order < known[j].Order
	})

	ids := make([]types.SectionID, 0, len(known))
	for _, spec := range known {
		if spec.Visible {
			ids = append(ids, spec.ID)
		}
	}
	return ids
}

// Build returns the visible sections of doc in configured order. Sections
// without any non-empty entry are left out entirely.
func Build(doc *types.CVDocument, specs []types.SectionSpec) []Section {
	if doc == nil {
		return nil
	}
	var out []Section
	for _, id := range Order(specs) {
		d := descriptors[id]
		var entries []Entry
		for _, e := range d.entries(doc) {
			if !e.IsEmpty() {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}
		out = append(out, Section{ID: id, Title: d.title, Entries: entries})
	}
	return out
}

func summaryEntries(doc *types.CVDocument) []Entry {
	return []Entry{{Items: bullets.Normalize(doc.Summary)}}
}

func competencyEntries(doc *types.CVDocument) []Entry {
	return []Entry{
		labelledList("Technical Skills", doc.Competencies.Technical),
		labelledList("Soft Skills", doc.Competencies.Soft),
	}
}

func experienceEntries(doc *types.CVDocument) []Entry {
	entries := make([]Entry, 0, len(doc.Experience))
	for _, e := range doc.Experience {
		entries = append(entries, Entry{
			Title:    strings.TrimSpace(e.Title),
			Subtitle: strings.TrimSpace(e.Organization),
			Date:     FormatRange(e.Start, e.End, e.Current),
			Items:    bullets.Normalize(e.Body),
		})
	}
	return entries
}

func educationEntries(doc *types.CVDocument) []Entry {
	entries := make([]Entry, 0, len(doc.Education))
	for _, e := range doc.Education {
		entries = append(entries, Entry{
			Title:    strings.TrimSpace(e.Degree),
			Subtitle: strings.TrimSpace(e.Institution),
			Date:     FormatRange(e.Start, e.End, e.Current),
			Items:    bullets.Normalize(e.Body),
		})
	}
	return entries
}

func certificateEntries(doc *types.CVDocument) []Entry {
	entries := make([]Entry, 0, len(doc.Certificates))
	for _, c := range doc.Certificates {
		entries = append(entries, Entry{
			Title:    strings.TrimSpace(c.Name),
			Subtitle: strings.TrimSpace(c.Issuer),
			Date:     certificateDate(c.Acquired, c.Expires),
			Items:    bullets.Normalize(c.Body),
		})
	}
	return entries
}

func activityEntries(doc *types.CVDocument) []Entry {
	entries := make([]Entry, 0, len(doc.Extracurricular))
	for _, a := range doc.Extracurricular {
		entries = append(entries, Entry{
			Title:    strings.TrimSpace(a.Role),
			Subtitle: strings.TrimSpace(a.Organization),
			Date:     FormatRange(a.Start, a.End, a.Current),
			Items:    bullets.Normalize(a.Body),
		})
	}
	return entries
}

func additionalEntries(doc *types.CVDocument) []Entry {
	caser := cases.Title(language.English)
	languages := make([]string, 0, len(doc.Languages))
	for _, l := range doc.Languages {
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		if level := strings.TrimSpace(l.Level); level != "" {
			name += " (" + caser.String(level) + ")"
		}
		languages = append(languages, name)
	}
	return []Entry{
		labelledList("Languages", languages),
		labelledList("Skills", doc.AdditionalSkills),
	}
}

// labelledList renders values as one comma separated paragraph under label.
// It is empty when no value is non-blank.
func labelledList(label string, values []string) Entry {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return Entry{}
	}
	return Entry{
		Title: label,
		Items: []bullets.Item{{Text: strings.Join(cleaned, ", ")}},
	}
}
