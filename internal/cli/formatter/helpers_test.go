package formatter

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func ptrFloat(v float64) *float64 { return &v }

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+15", stripANSI(FormatDelta(15)))
	assert.Equal(t, "-8.5", stripANSI(FormatDelta(-8.5)))
	assert.Equal(t, "+0", stripANSI(FormatDelta(0)))
}

func TestReasonLine(t *testing.T) {
	tests := []struct {
		name   string
		reason app.Reason
		want   string
	}{
		{
			name:   "additive",
			reason: app.Reason{Code: app.ReasonGPAFit, Message: "GPA 3.6 comfortably above course average", WeightDelta: ptrFloat(10)},
			want:   "+10 GPA_FIT GPA 3.6 comfortably above course average",
		},
		{
			name:   "multiplier",
			reason: app.Reason{Code: app.ReasonPrerequisitePenalty, Message: "prerequisites not met", Multiplier: ptrFloat(0.5)},
			want:   "×0.50 PREREQUISITE_PENALTY prerequisites not met",
		},
		{
			name:   "plain",
			reason: app.Reason{Code: app.ReasonCourseFull, Message: "no seats left"},
			want:   "COURSE_FULL no seats left",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(ReasonLine(tt.reason)))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "--", stripANSI(Placeholder("")))
	assert.Equal(t, "CS", Placeholder("CS"))
}

func TestConfidenceBadge(t *testing.T) {
	assert.Equal(t, "● HIGH", stripANSI(ConfidenceBadge(app.ConfidenceHigh)))
	assert.Equal(t, "● LOW", stripANSI(ConfidenceBadge(app.ConfidenceLow)))
	assert.Equal(t, "● UNKNOWN", stripANSI(ConfidenceBadge("")))
}
