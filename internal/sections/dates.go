package sections

import (
	"strings"
	"time"
)

// Present is shown instead of the end date of current entries.
const Present = "Present"

// rangeSeparator joins start and end dates.
const rangeSeparator = " – "

// FormatDate renders a full YYYY-MM-DD date as "Jan 2006". Year and
// year-month dates, and anything unparseable, are returned trimmed.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("Jan 2006")
	}
	return s
}

// FormatRange renders "start – end". A current entry ends in Present and
// ignores end. When only one side is known it is shown alone.
func FormatRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := FormatDate(end)
	if current {
		to = Present
	}
	if from != "" && to != "" {
		return from + rangeSeparator + to
	}
	return from + to
}

func certificateDate(acquired, expires string) string {
	acquired = FormatDate(acquired)
	expires = FormatDate(expires)
	switch {
	case acquired != "" && expires != "":
		return acquired + " (Expires " + expires + ")"
	case expires != "":
		return "Expires " + expires
	default:
		return acquired
	}
}
