package markup

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/bullets"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

func parseHTML(t *testing.T, doc Document) *goquery.Document {
	t.Helper()
	html, err := RenderHTML(doc)
	require.NoError(t, err)
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return dom
}

func TestRenderHTML_SectionsInOrder(t *testing.T) {
	for _, id := range []string{templates.Modern, templates.Minimal} {
		t.Run(id, func(t *testing.T) {
			dom := parseHTML(t, sampleDocument(t, id, false))

			var titles []string
			dom.Find("section.cv-section h2").Each(func(_ int, s *goquery.Selection) {
				titles = append(titles, s.Text())
			})
			assert.Equal(t, []string{"Professional Experience", "Education"}, titles)

			ids, _ := dom.Find("section.cv-section").First().Attr("id")
			assert.Equal(t, string(types.SectionExperience), ids)
			assert.Equal(t, "Jane Doe", dom.Find("h1.cv-name").Text())
			assert.Equal(t, "jane@example.com | linkedin.com/in/janedoe", dom.Find(".cv-contact").Text())
		})
	}
}

func TestRenderHTML_EntryContent(t *testing.T) {
	dom := parseHTML(t, sampleDocument(t, templates.Modern, false))
	entry := dom.Find("#experience article.cv-entry").First()

	assert.Equal(t, "Engineer", entry.Find(".cv-entry-title").Text())
	assert.Equal(t, "2020-01 – Present", entry.Find(".cv-date").Text())
	assert.Equal(t, "Acme & Sons", entry.Find(".cv-entry-subtitle").Text())
	assert.Equal(t, "Owned the billing platform.", entry.Find("p.cv-paragraph").Text())

	var items []string
	entry.Find("ul.cv-bullets li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, s.Text())
	})
	assert.Equal(t, []string{"Built X", "Shipped Y"}, items)
	assert.Equal(t, 1, entry.Find("ul.cv-bullets").Length())
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	doc := sampleDocument(t, templates.Modern, false)
	doc.Name = `<script>alert("x")</script>`

	html, err := RenderHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_Photo(t *testing.T) {
	dom := parseHTML(t, sampleDocument(t, templates.Minimal, true))
	src, ok := dom.Find("img.cv-photo").Attr("src")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"))

	dom = parseHTML(t, sampleDocument(t, templates.Minimal, false))
	assert.Equal(t, 0, dom.Find("img.cv-photo").Length())
}

func TestRenderHTML_UnknownStyleUsesModern(t *testing.T) {
	doc := sampleDocument(t, templates.Professional, false)
	html, err := RenderHTML(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "border-left: 4mm solid")
}

func TestGroup(t *testing.T) {
	items := []bullets.Item{
		{Text: "intro"},
		{Indent: true, Text: "a"},
		{Indent: true, Text: "b"},
		{Text: "outro"},
	}
	assert.Equal(t, []ItemGroup{
		{List: false, Lines: []string{"intro"}},
		{List: true, Lines: []string{"a", "b"}},
		{List: false, Lines: []string{"outro"}},
	}, Group(items))
	assert.Nil(t, Group(nil))
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "#03d27c", cssColor("#03d27c"))
	assert.Equal(t, "#abc", cssColor("#abc"))
	assert.Equal(t, "#000000", cssColor("red; background: url(x)"))
	assert.Equal(t, "#aabbcc", cssColor6("#abc"))
}
