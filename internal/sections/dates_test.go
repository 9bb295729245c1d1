package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 2023", FormatDate("2023-03-01"))
	assert.Equal(t, "2023-03", FormatDate("2023-03"))
	assert.Equal(t, "2023", FormatDate(" 2023 "))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"both", "2020-01", "2021-06", false, "2020-01 – 2021-06"},
		{"current ignores end", "2020-01", "2021-06", true, "2020-01 – Present"},
		{"current without end", "2020-01", "", true, "2020-01 – Present"},
		{"start only", "2020", "", false, "2020"},
		{"end only", "", "2020", false, "2020"},
		{"none", "", "", false, ""},
		{"current only", "", "", true, "Present"},
		{"full dates", "2019-07-15", "2020-02-01", false, "Jul 2019 – Feb 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestCertificateDate(t *testing.T) {
	assert.Equal(t, "2021", certificateDate("2021", ""))
	assert.Equal(t, "Expires 2025", certificateDate("", "2025"))
	assert.Equal(t, "", certificateDate("", ""))
}
