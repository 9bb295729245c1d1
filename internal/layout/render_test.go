package layout

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/measure"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

// narrow gives every rune half a millimetre per 10pt of font size.
func narrow(text string, font templates.Font) (float64, error) {
	return float64(len([]rune(text))) * font.SizePt * 0.05, nil
}

type result struct {
	rec    *draw.Recorder
	report Report
	style  templates.Style
}

func render(t *testing.T, doc *types.CVDocument, specs []types.SectionSpec, opts Options) result {
	t.Helper()
	if opts.Style.ID == "" {
		opts.Style = templates.Resolve(templates.Professional)
	}
	opts.Measurer = measure.New(narrow, nil)
	rec := draw.NewRecorder(opts.Style.Page.Width, opts.Style.Page.Height)
	report := New(rec, opts).Render(doc.Personal, sections.Build(doc, specs))
	return result{rec: rec, report: report, style: opts.Style}
}

func personal() types.Personal {
	return types.Personal{
		FirstName: "Jane",
		LastName:  "Doe",
		Title:     "Platform Engineer",
		Email:     "jane@example.com",
		Phone:     "+44 20 7946 0000",
	}
}

func fullDocument() *types.CVDocument {
	return &types.CVDocument{
		Personal: personal(),
		Summary:  "Engineer focused on reliable systems.",
		Competencies: types.Competencies{
			Technical: []string{"Go", "Kubernetes"},
			Soft:      []string{"Mentoring"},
		},
		Experience: []types.Experience{
			{Title: "Engineer", Organization: "Acme", Start: "2020-01", Current: true, Body: "- Built X\n- Shipped Y"},
		},
		Education:        []types.Education{{Degree: "BSc Mathematics", Institution: "UCL", Start: "2012", End: "2015"}},
		Certificates:     []types.Certificate{{Name: "CKA", Issuer: "CNCF", Acquired: "2021-03-04"}},
		Extracurricular:  []types.Activity{{Role: "Mentor", Organization: "Code Club", Start: "2019"}},
		Languages:        []types.Language{{Name: "English", Level: "native"}},
		AdditionalSkills: []string{"Public speaking"},
	}
}

// assertWithinPages checks that no text crosses the bottom margin.
func assertWithinPages(t *testing.T, r result) {
	t.Helper()
	bottom := r.style.Page.Bottom()
	for _, op := range r.rec.Texts() {
		assert.LessOrEqual(t, op.Text.Y+op.Text.Font.LineHeight(), bottom+1e-6, "text %q overflows page %d", op.Text.Content, op.Page)
	}
}

func TestRender_PersonalOnly(t *testing.T) {
	r := render(t, &types.CVDocument{Personal: personal()}, nil, Options{})

	assert.Equal(t, 1, r.report.Pages)
	assert.Equal(t, 1, r.rec.Pages())
	assert.Empty(t, r.report.Sections)

	header := map[templates.Role]bool{
		templates.RoleName:     true,
		templates.RoleHeadline: true,
		templates.RoleContact:  true,
	}
	require.NotEmpty(t, r.rec.Ops())
	for _, op := range r.rec.Ops() {
		require.Equal(t, draw.OpText, op.Kind)
		assert.True(t, header[op.Text.Role], "unexpected role %s", op.Text.Role)
	}

	_, ok := r.rec.FindText("Jane Doe")
	assert.True(t, ok)
	_, ok = r.rec.FindText("jane@example.com | +44 20 7946 0000")
	assert.True(t, ok)
}

func TestRender_EngineerExample(t *testing.T) {
	doc := &types.CVDocument{
		Personal: personal(),
		Experience: []types.Experience{
			{Title: "Engineer", Organization: "Acme", Start: "2020-01", Current: true, Body: "- Built X\n- Shipped Y"},
		},
	}
	r := render(t, doc, nil, Options{})
	page := r.style.Page

	assert.NotContains(t, r.rec.PlainText(), "Professional Summary")
	require.Len(t, r.report.Sections, 1)
	assert.Equal(t, types.SectionExperience, r.report.Sections[0].ID)

	date, ok := r.rec.FindText("2020-01 – Present")
	require.True(t, ok)
	width, _ := narrow(date.Text.Content, r.style.Font(templates.RoleDate))
	assert.InDelta(t, page.Width-page.MarginRight-width, date.Text.X, 1e-9)

	title, ok := r.rec.FindText("Engineer")
	require.True(t, ok)
	assert.InDelta(t, page.MarginLeft, title.Text.X, 1e-9)
	assert.InDelta(t, title.Text.Y, date.Text.Y, 1e-9)

	for _, s := range []string{"Built X", "Shipped Y"} {
		op, ok := r.rec.FindText(s)
		require.True(t, ok, s)
		assert.InDelta(t, page.MarginLeft+r.style.Spacing.BulletIndent, op.Text.X, 1e-9)
		assert.Equal(t, templates.RoleBody, op.Text.Role)
	}
	built, _ := r.rec.FindText("Built X")
	shipped, _ := r.rec.FindText("Shipped Y")
	assert.Less(t, built.Text.Y, shipped.Text.Y)
}

func TestRender_SectionGapIsUniform(t *testing.T) {
	for _, id := range []string{templates.Professional, templates.Compact} {
		t.Run(id, func(t *testing.T) {
			style := templates.Resolve(id)
			r := render(t, fullDocument(), nil, Options{Style: style})

			require.Len(t, r.report.Sections, len(types.DefaultSectionOrder))
			for i := 1; i < len(r.report.Sections); i++ {
				prev, next := r.report.Sections[i-1], r.report.Sections[i]
				if prev.EndPage != next.StartPage {
					continue
				}
				assert.InDelta(t, style.Spacing.BetweenSections, next.StartY-prev.EndY, 1e-9,
					"gap between %s and %s", prev.ID, next.ID)
			}
			assertWithinPages(t, r)
		})
	}
}

func TestRender_SectionOrderFollowsSpecs(t *testing.T) {
	specs := []types.SectionSpec{
		{ID: types.SectionEducation, Visible: true, Order: 0},
		{ID: types.SectionExperience, Visible: true, Order: 1},
		{ID: types.SectionSummary, Visible: false, Order: 2},
		{ID: types.SectionAdditional, Visible: true, Order: 3},
	}
	r := render(t, fullDocument(), specs, Options{})

	var got []types.SectionID
	for _, p := range r.report.Sections {
		got = append(got, p.ID)
	}
	assert.Equal(t, []types.SectionID{types.SectionEducation, types.SectionExperience, types.SectionAdditional}, got)
	assert.NotContains(t, r.rec.PlainText(), "Professional Summary")
	assert.NotContains(t, r.rec.PlainText(), "Engineer focused")

	education, _ := r.rec.FindText("Education")
	experience, _ := r.rec.FindText("Professional Experience")
	assert.Less(t, education.Text.Y, experience.Text.Y)
}

func TestRender_EntriesNeverSplit(t *testing.T) {
	doc := &types.CVDocument{Personal: personal()}
	for i := range 30 {
		role := fmt.Sprintf("Role %02d", i)
		doc.Experience = append(doc.Experience, types.Experience{
			Title:        role,
			Organization: "Org",
			Start:        "2020",
			End:          "2021",
			Body:         fmt.Sprintf("- %[1]s task 1\n- %[1]s task 2\n- %[1]s task 3", role),
		})
	}
	r := render(t, doc, nil, Options{})
	require.Greater(t, r.report.Pages, 1)

	for i := range 30 {
		role := fmt.Sprintf("Role %02d", i)
		title, ok := r.rec.FindText(role)
		require.True(t, ok, role)
		for k := 1; k <= 3; k++ {
			task, ok := r.rec.FindText(fmt.Sprintf("%s task %d", role, k))
			require.True(t, ok)
			assert.Equal(t, title.Page, task.Page, "%s split across pages", role)
		}
	}

	heading, ok := r.rec.FindText("Professional Experience")
	require.True(t, ok)
	first, _ := r.rec.FindText("Role 00")
	assert.Equal(t, heading.Page, first.Page)
	assertWithinPages(t, r)
}

func TestRender_OversizedEntryOverflowsFreshPage(t *testing.T) {
	var body strings.Builder
	for i := range 200 {
		fmt.Fprintf(&body, "- step %d\n", i)
	}
	doc := &types.CVDocument{
		Personal:   personal(),
		Summary:    "Short summary.",
		Experience: []types.Experience{{Title: "Marathon", Organization: "Acme", Body: body.String()}},
	}
	r := render(t, doc, nil, Options{})
	page := r.style.Page

	assert.Equal(t, 2, r.report.Pages)
	summary, _ := r.rec.FindText("Short summary.")
	assert.Equal(t, 0, summary.Page)

	heading, ok := r.rec.FindText("Professional Experience")
	require.True(t, ok)
	assert.Equal(t, 1, heading.Page)
	assert.InDelta(t, page.MarginTop, heading.Text.Y, 1e-9)

	last, ok := r.rec.FindText("step 199")
	require.True(t, ok)
	assert.Equal(t, 1, last.Page)
	assert.Greater(t, last.Text.Y, page.Bottom())
}

func TestRender_EntryThatFitsAlonePrefersMarginsOverHeading(t *testing.T) {
	style := templates.Resolve(templates.Professional)
	l := New(draw.NewRecorder(style.Page.Width, style.Page.Height), Options{Style: style, Measurer: measure.New(narrow, nil)})
	heading := l.titleBlock(sections.Title(types.SectionExperience)).height + style.Spacing.AfterTitle
	usable := style.Page.UsableHeight()

	// Grow the body until the entry fits a page alone but not under its heading.
	var doc *types.CVDocument
	var body strings.Builder
	for i := 0; ; i++ {
		fmt.Fprintf(&body, "- step %d\n", i)
		doc = &types.CVDocument{
			Personal:   personal(),
			Experience: []types.Experience{{Title: "Marathon", Organization: "Acme", Body: body.String()}},
		}
		h := l.entryBlock(sections.Build(doc, nil)[0].Entries[0]).height
		require.LessOrEqual(t, h, usable)
		if heading+h > usable {
			break
		}
	}

	r := render(t, doc, nil, Options{})
	assertWithinPages(t, r)
	assert.Equal(t, 2, r.report.Pages)

	entry, ok := r.rec.FindText("Marathon")
	require.True(t, ok)
	assert.Equal(t, 1, entry.Page)
	assert.InDelta(t, style.Page.MarginTop, entry.Text.Y, 1e-9)
}

func TestRender_PhotoTopRight(t *testing.T) {
	style := templates.Resolve(templates.Professional)
	photo := image.NewRGBA(image.Rect(0, 0, 60, 60))
	r := render(t, &types.CVDocument{Personal: personal()}, nil, Options{Style: style, Photo: photo})

	var images []draw.Op
	for _, op := range r.rec.Ops() {
		if op.Kind == draw.OpImage {
			images = append(images, op)
		}
	}
	require.Len(t, images, 1)
	img := images[0].Image
	assert.InDelta(t, style.Page.Width-style.Page.MarginRight-style.PhotoSize, img.X, 1e-9)
	assert.InDelta(t, style.Page.MarginTop, img.Y, 1e-9)
	assert.Empty(t, r.report.Warnings)
}

type refusingSurface struct {
	*draw.Recorder
}

func (refusingSurface) DrawImage(draw.Image) error {
	return errors.New("unsupported image")
}

func TestRender_PhotoFailureIsRecovered(t *testing.T) {
	style := templates.Resolve(templates.Professional)
	surface := refusingSurface{draw.NewRecorder(style.Page.Width, style.Page.Height)}
	l := New(surface, Options{
		Style:    style,
		Measurer: measure.New(narrow, nil),
		Photo:    image.NewRGBA(image.Rect(0, 0, 10, 10)),
	})
	report := l.Render(personal(), nil)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0].Error(), "unsupported image")
	_, ok := surface.FindText("Jane Doe")
	assert.True(t, ok)
}
