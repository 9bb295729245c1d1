package layout

import (
	"fmt"
	"image"
	"io"
	"log"
	"strings"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/draw"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/measure"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/sections"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/types"
)

const (
	bulletMarker   = "•"
	contactSep     = " | "
	titleDateGap   = 4.0 // minimum gap between an entry title and its date
	photoGap       = 5.0 // gap between the header text column and the photo
	ruleOffset     = 1.0 // distance from the title text to the rule
	bulletMarkerAt = 0.3 // marker position as a fraction of the bullet indent
)

// Placement records where a section landed.
type Placement struct {
	ID        types.SectionID `json:"id"`
	StartPage int             `json:"startPage"`
	StartY    float64         `json:"startY"`
	EndPage   int             `json:"endPage"`
	EndY      float64         `json:"endY"`
}

// Report summarises one layout pass.
type Report struct {
	Pages    int         `json:"pages"`
	Sections []Placement `json:"sections"`
	// Warnings are recovered problems, such as a photo the surface refused.
	Warnings []error `json:"-"`
}

// Options configures a Layout.
type Options struct {
	Style    templates.Style
	Measurer *measure.Measurer
	Logger   *log.Logger
	// Photo is drawn at the top right of the header when set.
	Photo image.Image
}

// Layout draws one document onto one surface. It is not reusable.
type Layout struct {
	style    templates.Style
	measurer *measure.Measurer
	logger   *log.Logger
	photo    image.Image
	surface  draw.Surface
	flow     *Flow
	report   Report
}

// New prepares a layout pass onto surface.
func New(surface draw.Surface, opts Options) *Layout {
	m := opts.Measurer
	if m == nil {
		m = measure.New(nil, opts.Logger)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Layout{
		style:    opts.Style,
		measurer: m,
		logger:   logger,
		photo:    opts.Photo,
		surface:  surface,
		flow:     NewFlow(opts.Style.Page, surface),
	}
}

// Render draws the header and every section in the given order.
func (l *Layout) Render(personal types.Personal, secs []sections.Section) Report {
	l.drawHeader(personal)
	for _, sec := range secs {
		l.drawSection(sec)
	}
	l.report.Pages = l.flow.Pages()
	l.logger.Printf("[LAYOUT] %d section(s) on %d page(s)", len(l.report.Sections), l.report.Pages)
	return l.report
}

func (l *Layout) drawHeader(p types.Personal) {
	page := l.style.Page
	top := page.MarginTop
	textWidth := page.ContentWidth()

	photoBottom := top
	if l.photo != nil && l.style.PhotoSize > 0 {
		size := l.style.PhotoSize
		err := l.surface.DrawImage(draw.Image{
			X:      page.Width - page.MarginRight - size,
			Y:      top,
			Width:  size,
			Height: size,
			Source: l.photo,
		})
		if err != nil {
			l.report.Warnings = append(l.report.Warnings, fmt.Errorf("photo not drawn: %w", err))
			l.logger.Printf("[LAYOUT] photo not drawn: %v", err)
		} else {
			photoBottom = top + size
			textWidth -= size + photoGap
		}
	}

	var header block
	header.stack(l.paragraph(p.Name(), templates.RoleName, textWidth, 0))
	header.stack(l.paragraph(p.Title, templates.RoleHeadline, textWidth, 0))
	header.stack(l.paragraph(contactLine(p), templates.RoleContact, textWidth, 0))
	header.emit(l.surface, page.MarginLeft, top)

	bottom := max(top+header.height, photoBottom)
	if bottom <= top+epsilon {
		return
	}
	l.flow.MoveTo(bottom)
	l.flow.Advance(l.style.Spacing.AfterHeader)
}

func contactLine(p types.Personal) string {
	var parts []string
	for _, s := range []string{p.Email, p.Phone, p.LinkedIn} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, contactSep)
}

func (l *Layout) drawSection(sec sections.Section) {
	if len(sec.Entries) == 0 {
		return
	}
	spacing := l.style.Spacing
	x := l.style.Page.MarginLeft

	title := l.titleBlock(sec.Title)
	first := l.entryBlock(sec.Entries[0])

	// The title is kept with the first entry unless together they exceed a
	// page while the entry alone fits one. Then the entry keeps its margins
	// and the title may end the previous page.
	heading := title.height + spacing.AfterTitle
	usable := l.style.Page.UsableHeight() + epsilon
	keep := heading+first.height <= usable || first.height > usable
	reserve := heading
	if keep {
		reserve += first.height
	}
	if l.flow.Reserve(reserve) {
		l.logger.Printf("[LAYOUT] page break before section %s", sec.ID)
	}

	start := l.flow.Cursor()
	title.emit(l.surface, x, start.Y)
	l.flow.Advance(heading)

	for i, entry := range sec.Entries {
		b := first
		if i > 0 {
			b = l.entryBlock(entry)
			l.flow.Advance(spacing.BetweenEntries)
		}
		if (i > 0 || !keep) && l.flow.Reserve(b.height) {
			l.logger.Printf("[LAYOUT] page break inside section %s", sec.ID)
		}
		if over := b.height - l.flow.Usable(); over > epsilon {
			l.logger.Printf("[LAYOUT] entry in section %s overflows the page by %.1fmm", sec.ID, over)
		}
		b.emit(l.surface, x, l.flow.Cursor().Y)
		l.flow.Advance(b.height)
	}

	end := l.flow.Cursor()
	l.report.Sections = append(l.report.Sections, Placement{
		ID:        sec.ID,
		StartPage: start.Page,
		StartY:    start.Y,
		EndPage:   end.Page,
		EndY:      end.Y,
	})
	l.flow.Advance(spacing.BetweenSections)
}

// titleBlock is the section heading with its separator rule.
func (l *Layout) titleBlock(title string) block {
	width := l.style.Page.ContentWidth()
	b := l.paragraph(title, templates.RoleSectionTitle, width, 0)
	if l.style.RuleWidth > 0 {
		y := b.height + ruleOffset
		b.lines = append(b.lines, draw.Line{
			X1: 0, Y1: y, X2: width, Y2: y,
			Width: l.style.RuleWidth,
			Color: l.style.Accent,
		})
		b.height = y + l.style.RuleWidth
	}
	return b
}

// entryBlock lays out one entry: title row with the date right aligned,
// subtitle, then body items.
func (l *Layout) entryBlock(e sections.Entry) block {
	width := l.style.Page.ContentWidth()
	var b block

	dateFont := l.style.Font(templates.RoleDate)
	titleWidth := width
	var dateWidth float64
	if e.Date != "" {
		dateWidth = l.measurer.TextWidth(e.Date, dateFont)
		if e.Title != "" {
			titleWidth = max(width-dateWidth-titleDateGap, width/2)
		}
	}
	row := l.paragraph(e.Title, templates.RoleEntryTitle, titleWidth, 0)
	if e.Date != "" {
		row.addText(draw.Text{
			X:       width - dateWidth,
			Content: e.Date,
			Role:    templates.RoleDate,
			Font:    dateFont,
		})
		row.height = max(row.height, l.measurer.LineHeight(dateFont))
	}
	b.stack(row)
	b.stack(l.paragraph(e.Subtitle, templates.RoleEntrySubtitle, width, 0))

	indent := l.style.Spacing.BulletIndent
	bodyFont := l.style.Font(templates.RoleBody)
	for _, item := range e.Items {
		if !item.Indent {
			b.stack(l.paragraph(item.Text, templates.RoleBody, width, 0))
			continue
		}
		p := l.paragraph(item.Text, templates.RoleBody, width-indent, indent)
		if p.height > 0 {
			p.addText(draw.Text{
				X:       indent * bulletMarkerAt,
				Content: bulletMarker,
				Role:    templates.RoleBody,
				Font:    bodyFont,
			})
		}
		b.stack(p)
	}
	return b
}

// paragraph wraps text with the font of role into a block offset by dx.
func (l *Layout) paragraph(text string, role templates.Role, width, dx float64) block {
	font := l.style.Font(role)
	m := l.measurer.Measure(text, font, width)
	lh := l.measurer.LineHeight(font)
	var b block
	for i, line := range m.Lines {
		b.addText(draw.Text{
			X:       dx,
			Y:       float64(i) * lh,
			Content: line,
			Role:    role,
			Font:    font,
		})
	}
	b.height = m.Height
	return b
}

