package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored by percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderHoursBar renders a worked-vs-scheduled bar for one weekday, scaled
// against the week's largest scheduled allotment.
func RenderHoursBar(worked, scheduled, maxScheduled float64, width int) string {
	if width < 2 {
		width = 2
	}
	if maxScheduled <= 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, width))
	}

	total := int(scheduled / maxScheduled * float64(width))
	if total > width {
		total = width
	}
	filled := 0
	if scheduled > 0 {
		filled = int(worked / scheduled * float64(total))
	}
	if filled > total {
		filled = total
	}

	return StyleGreen.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, total-filled)) +
		strings.Repeat(" ", width-total)
}
