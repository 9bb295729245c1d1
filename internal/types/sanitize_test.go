package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsISODate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2020", true},
		{"2020-01", true},
		{"2020-01-15", true},
		{"2020-13", false},
		{"2020-1", false},
		{"Jan 2020", false},
		{"", false},
		{"2020-02-30", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsISODate(tt.input))
		})
	}
}

func TestSanitize_BlanksInvalidDates(t *testing.T) {
	doc := &CVDocument{
		Experience: []Experience{
			{Title: "Engineer", Start: "2020-01", End: "last spring"},
		},
		Certificates: []Certificate{
			{Name: "CKA", Acquired: "yesterday", Expires: "2027-05-01"},
		},
	}

	problems := Sanitize(doc)
	require.Len(t, problems, 2)

	assert.Equal(t, "2020-01", doc.Experience[0].Start)
	assert.Empty(t, doc.Experience[0].End)
	assert.Empty(t, doc.Certificates[0].Acquired)
	assert.Equal(t, "2027-05-01", doc.Certificates[0].Expires)

	var inputErr *InputValidationError
	require.True(t, errors.As(problems[0], &inputErr))
	assert.Equal(t, "experience[0].end", inputErr.Field)
	assert.Equal(t, "last spring", inputErr.Value)
}

func TestSanitize_KeepsMalformedEmail(t *testing.T) {
	doc := &CVDocument{Personal: Personal{Email: "not-an-email"}}

	problems := Sanitize(doc)
	require.Len(t, problems, 1)
	assert.Equal(t, "not-an-email", doc.Personal.Email)
	assert.Contains(t, problems[0].Error(), "personal.email")
}

func TestSanitize_CleanDocument(t *testing.T) {
	doc := &CVDocument{
		Personal:   Personal{FirstName: "Ada", Email: "ada@example.com"},
		Experience: []Experience{{Title: "Engineer", Start: "2020", Current: true}},
	}

	assert.Empty(t, Sanitize(doc))
	assert.Empty(t, Sanitize(nil))
}

func TestSanitize_TrimsDatesBeforeChecking(t *testing.T) {
	doc := &CVDocument{
		Experience: []Experience{{Title: "Engineer", Start: " 2020-01 ", End: "\t2021"}},
	}

	assert.Empty(t, Sanitize(doc))
	assert.Equal(t, "2020-01", doc.Experience[0].Start)
	assert.Equal(t, "2021", doc.Experience[0].End)
}
