package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	shareWidth = 10
)

// RenderShare renders v relative to peak as a bar like [████░░░░]  45%.
// Days at or above 66% of the peak are green, below 33% dim.
func RenderShare(v, peak float64, width int) string {
	frac := 0.0
	if peak > 0 {
		frac = math.Abs(v) / peak
	}
	frac = math.Min(math.Max(frac, 0), 1)
	if width < 2 {
		width = 2
	}

	filled := int(math.Round(frac * float64(width)))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleBlue
	switch {
	case frac >= 0.66:
		style = StyleGreen
	case frac < 0.33:
		style = StyleDim
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), frac*100)
}
