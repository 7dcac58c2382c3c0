package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCompletion renders logged/total as a bar like [████░░░░] 3/8.
// The bar turns green once every set is logged.
func RenderCompletion(done, total, width int) string {
	width = max(width, 2)
	pct := 0.0
	if total > 0 {
		pct = min(max(float64(done)/float64(total), 0), 1)
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	if total > 0 && done >= total {
		style = StyleGreen
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}
