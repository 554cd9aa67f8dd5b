package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampFraction(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

func progressStyleFor(pct float64) func(...string) string {
	switch {
	case pct < 0.33:
		return StyleRed.Render
	case pct < 0.66:
		return StyleYellow.Render
	default:
		return StyleGreen.Render
	}
}

func blocks(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a degree progress bar like [████░░░░] 45%.
// pct is a fraction in [0,1]; out-of-range values are clamped.
func RenderProgress(pct float64, width int) string {
	pct = clampFraction(pct)
	render := progressStyleFor(pct)
	return fmt.Sprintf("[%s] %3.0f%%", render(blocks(pct, width)), pct*100)
}

// RenderCompactBar renders a bare bar without brackets or percentage, used
// for per-term credit load. dim renders the bar uncolored.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampFraction(pct)
	bar := blocks(pct, width)
	if dim {
		return StyleDim.Render(bar)
	}
	return progressStyleFor(pct)(bar)
}
