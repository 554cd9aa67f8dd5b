package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ConfidenceBadge returns a colored indicator such as "● HIGH".
func ConfidenceBadge(c app.Confidence) string {
	switch c {
	case app.ConfidenceHigh:
		return StyleGreen.Render("● HIGH")
	case app.ConfidenceMedium:
		return StyleYellow.Render("● MEDIUM")
	case app.ConfidenceLow:
		return StyleRed.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// EligibilityBadge renders the registration verdict.
func EligibilityBadge(eligible bool) string {
	if eligible {
		return StyleGreen.Render("✔ ELIGIBLE")
	}
	return StyleRed.Render("✖ NOT ELIGIBLE")
}

// ProbabilityStyle colors a 0-100 success probability.
func ProbabilityStyle(p float64) lipgloss.Style {
	switch {
	case p >= 75:
		return StyleGreen
	case p >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// CourseTypeBadge returns a short colored label for a course type.
func CourseTypeBadge(t domain.CourseType) string {
	switch t {
	case domain.CourseRequired:
		return StyleHeader.Render("required")
	case domain.CourseGeneralEducation:
		return StyleBlue.Render("gen-ed")
	case domain.CourseElective:
		return StylePurple.Render("elective")
	default:
		return StyleDim.Render(string(t))
	}
}

// DifficultyBadge colors a catalog difficulty.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render(string(d))
	case domain.DifficultyMedium:
		return StyleYellow.Render(string(d))
	case domain.DifficultyHard:
		return StyleRed.Render(string(d))
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
