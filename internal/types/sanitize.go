package types

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// isoDateLayouts are the accepted ISO date precisions.
var isoDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// InputValidationError reports a malformed input field that was recovered with a default.
type InputValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("input validation error: %s %q: %s", e.Field, e.Value, e.Message)
}

// IsISODate reports whether s is a YYYY, YYYY-MM or YYYY-MM-DD date.
func IsISODate(s string) bool {
	for _, layout := range isoDateLayouts {
		if len(s) != len(layout) {
			continue
		}
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsISODate(fl.Field().String())
		})
	})
	return validate
}

// Sanitize blanks dates that are not ISO formatted and reports every recovered
// field. Malformed emails are reported but kept. It never fails.
func Sanitize(doc *CVDocument) []error {
	if doc == nil {
		return nil
	}
	v := getValidator()
	var problems []error

	checkDate := func(field string, value *string) {
		*value = strings.TrimSpace(*value)
		if err := v.Var(*value, "omitempty,isodate"); err != nil {
			problems = append(problems, &InputValidationError{
				Field:   field,
				Value:   *value,
				Message: "not an ISO date, rendered as empty",
			})
			*value = ""
		}
	}

	if err := v.Var(doc.Personal.Email, "omitempty,email"); err != nil {
		problems = append(problems, &InputValidationError{
			Field:   "personal.email",
			Value:   doc.Personal.Email,
			Message: "not a valid email address",
		})
	}

	for i := range doc.Experience {
		e := &doc.Experience[i]
		checkDate(fmt.Sprintf("experience[%d].start", i), &e.Start)
		checkDate(fmt.Sprintf("experience[%d].end", i), &e.End)
	}
	for i := range doc.Education {
		e := &doc.Education[i]
		checkDate(fmt.Sprintf("education[%d].start", i), &e.Start)
		checkDate(fmt.Sprintf("education[%d].end", i), &e.End)
	}
	for i := range doc.Certificates {
		c := &doc.Certificates[i]
		checkDate(fmt.Sprintf("certificates[%d].acquired", i), &c.Acquired)
		checkDate(fmt.Sprintf("certificates[%d].expires", i), &c.Expires)
	}
	for i := range doc.Extracurricular {
		a := &doc.Extracurricular[i]
		checkDate(fmt.Sprintf("extracurricular[%d].start", i), &a.Start)
		checkDate(fmt.Sprintf("extracurricular[%d].end", i), &a.End)
	}

	return problems
}
