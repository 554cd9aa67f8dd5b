package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDelta renders a signed score contribution like "+15" or "-8.5".
func FormatDelta(v float64) string {
	s := fmt.Sprintf("%+.1f", v)
	s = strings.TrimSuffix(s, ".0")
	if v < 0 {
		return StyleRed.Render(s)
	}
	return StyleGreen.Render(s)
}

// ReasonLine renders one structured reason with its weight or multiplier.
func ReasonLine(r app.Reason) string {
	var weight string
	switch {
	case r.WeightDelta != nil:
		weight = FormatDelta(*r.WeightDelta) + " "
	case r.Multiplier != nil:
		weight = StyleYellow.Render(fmt.Sprintf("×%.2f", *r.Multiplier)) + " "
	}
	return fmt.Sprintf("%s%s %s", weight, Dim(string(r.Code)), r.Message)
}

// Placeholder renders "--" for empty values.
func Placeholder(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}

// FormatGPA renders a 0.00-4.00 grade point average.
func FormatGPA(gpa float64) string {
	return fmt.Sprintf("%.2f", gpa)
}

// FormatPercent renders a 0-100 value with no decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}
