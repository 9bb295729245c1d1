// Package types provides type definitions for structured data used throughout the cvforge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"strings"
)

// CVDocument is the résumé data model consumed by the render engine.
// Optional fields may be empty strings or nil slices.
type CVDocument struct {
	Personal         Personal      `json:"personal"`
	Summary          string        `json:"summary,omitempty"`
	Competencies     Competencies  `json:"competencies"`
	Experience       []Experience  `json:"experience,omitempty"`
	Education        []Education   `json:"education,omitempty"`
	Certificates     []Certificate `json:"certificates,omitempty"`
	Extracurricular  []Activity    `json:"extracurricular,omitempty"`
	Languages        []Language    `json:"languages,omitempty"`
	AdditionalSkills []string      `json:"additionalSkills,omitempty"`
}

// Clone returns a copy whose slices can be modified without touching d.
func (d *CVDocument) Clone() *CVDocument {
	c := *d
	c.Competencies.Technical = slices.Clone(d.Competencies.Technical)
	c.Competencies.Soft = slices.Clone(d.Competencies.Soft)
	c.Experience = slices.Clone(d.Experience)
	c.Education = slices.Clone(d.Education)
	c.Certificates = slices.Clone(d.Certificates)
	c.Extracurricular = slices.Clone(d.Extracurricular)
	c.Languages = slices.Clone(d.Languages)
	c.AdditionalSkills = slices.Clone(d.AdditionalSkills)
	return &c
}

// Personal holds the header block data.
type Personal struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Photo     string `json:"photo,omitempty"` // data: URI or file path
}

// Name returns the display name built from first and last name.
func (p Personal) Name() string {
	return strings.Join(strings.Fields(p.FirstName+" "+p.LastName), " ")
}

// Competencies groups technical and soft skills.
type Competencies struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// Experience is one job.
type Experience struct {
	Title        string `json:"title"`
	Organization string `json:"org"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	Current      bool   `json:"current,omitempty"`
	Body         string `json:"body,omitempty"`
}

// Education is one degree.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Body        string `json:"body,omitempty"`
}

// Certificate is one certification.
type Certificate struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer,omitempty"`
	Acquired string `json:"acquired,omitempty"`
	Expires  string `json:"expires,omitempty"`
	Body     string `json:"body,omitempty"`
}

// Activity is one extracurricular activity.
type Activity struct {
	Role         string `json:"role"`
	Organization string `json:"org,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	Current      bool   `json:"current,omitempty"`
	Body         string `json:"body,omitempty"`
}

// Language is a spoken language and proficiency level.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// SectionID identifies one of the seven renderable section types.
type SectionID string

// Section identifiers, in default order.
const (
	SectionSummary         SectionID = "summary"
	SectionCompetencies    SectionID = "competencies"
	SectionExperience      SectionID = "experience"
	SectionEducation       SectionID = "education"
	SectionCertificates    SectionID = "certificates"
	SectionExtracurricular SectionID = "extracurricular"
	SectionAdditional      SectionID = "additional"
)

// DefaultSectionOrder is used when no usable section configuration is provided.
var DefaultSectionOrder = []SectionID{
	SectionSummary,
	SectionCompetencies,
	SectionExperience,
	SectionEducation,
	SectionCertificates,
	SectionExtracurricular,
	SectionAdditional,
}

// IsKnown reports whether id is one of the seven section types.
func (id SectionID) IsKnown() bool {
	for _, known := range DefaultSectionOrder {
		if id == known {
			return true
		}
	}
	return false
}

// SectionSpec configures the order and visibility of one section.
type SectionSpec struct {
	ID      SectionID `json:"id"`
	Visible bool      `json:"visible"`
	Order   int       `json:"order"`
}

// DefaultSectionSpecs returns all seven sections visible in default order.
func DefaultSectionSpecs() []SectionSpec {
	specs := make([]SectionSpec, len(DefaultSectionOrder))
	for i, id := range DefaultSectionOrder {
		specs[i] = SectionSpec{ID: id, Visible: true, Order: i}
	}
	return specs
}
