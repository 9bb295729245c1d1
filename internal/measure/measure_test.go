package measure

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamnotacoder69/ResumeForge-sub002/internal/templates"
)

var body = templates.Font{SizePt: 10, LineSpacing: 1.5}

// monospace gives every rune a width of 1mm so wrap points are predictable.
func monospace(text string, _ templates.Font) (float64, error) {
	return float64(len([]rune(text))), nil
}

func TestMeasure_EmptyText(t *testing.T) {
	m := New(monospace, nil)
	assert.Equal(t, Metrics{}, m.Measure("", body, 50))
	assert.Equal(t, Metrics{}, m.Measure("  \n \t ", body, 50))
}

func TestWrap_BreaksAtWordBoundaries(t *testing.T) {
	m := New(monospace, nil)
	lines := m.Wrap("the quick brown fox jumps", body, 10)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps"}, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 10)
	}
}

func TestWrap_CollapsesWhitespaceAndHonoursNewlines(t *testing.T) {
	m := New(monospace, nil)
	lines := m.Wrap("alpha   beta\n\n\ngamma", body, 100)
	assert.Equal(t, []string{"alpha beta", "gamma"}, lines)
}

func TestWrap_SplitsOverlongWords(t *testing.T) {
	m := New(monospace, nil)
	lines := m.Wrap("ab abcdefghijkl cd", body, 5)
	assert.Equal(t, []string{"ab", "abcde", "fghij", "kl cd"}, lines)
}

func TestWrap_NoLimit(t *testing.T) {
	m := New(monospace, nil)
	assert.Equal(t, []string{"one two three"}, m.Wrap("one  two three", body, 0))
}

func TestMeasure_HeightFollowsLineCount(t *testing.T) {
	m := New(monospace, nil)
	metrics := m.Measure("aaaa bbbb cccc", body, 9)
	require.Equal(t, 2, metrics.LineCount)
	assert.InDelta(t, 2*body.LineHeight(), metrics.Height, 1e-9)
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, metrics.Lines)
}

func TestTextWidth_FallsBackAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	failing := func(string, templates.Font) (float64, error) {
		return 0, errors.New("no glyphs")
	}
	m := New(failing, logger)

	w := m.TextWidth("hello", body)
	assert.InDelta(t, ApproxWidth("hello", body), w, 1e-9)
	m.TextWidth("again", body)

	assert.Equal(t, 1, strings.Count(buf.String(), "[MEASURE]"))
	assert.Contains(t, buf.String(), "no glyphs")
}

func TestTextWidth_NilWidthUsesApproximation(t *testing.T) {
	m := New(nil, nil)
	assert.InDelta(t, ApproxWidth("Engineer", body), m.TextWidth("Engineer", body), 1e-9)
	assert.Zero(t, m.TextWidth("", body))
}

func TestApproxWidth(t *testing.T) {
	regular := ApproxWidth("Mississippi", body)
	bold := ApproxWidth("Mississippi", templates.Font{SizePt: 10, Bold: true})
	assert.Greater(t, regular, 0.0)
	assert.Greater(t, bold, regular)

	assert.Greater(t, ApproxWidth("WWW", body), ApproxWidth("iii", body))
	assert.InDelta(t, 2*ApproxWidth("abc", body), ApproxWidth("abc", templates.Font{SizePt: 20}), 1e-9)
}

func TestWrap_AgreesWithMeasure(t *testing.T) {
	m := New(nil, nil)
	text := "Designed and operated a multi-region event pipeline handling two billion messages per day with exactly-once delivery."
	metrics := m.Measure(text, body, 60)
	assert.Equal(t, m.Wrap(text, body, 60), metrics.Lines)
	for _, line := range metrics.Lines {
		assert.LessOrEqual(t, m.TextWidth(line, body), 60.0)
	}
}
