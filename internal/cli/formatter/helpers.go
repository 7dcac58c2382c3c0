package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Placeholder is shown for empty values.
const Placeholder = "--"

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
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly distance to a past date.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(now.Sub(t).Hours() / 24))

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

// HumanDate renders a session date, with Today/Yesterday relative to now.
func HumanDate(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatNumber prints a weight without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FormatWeight(w *float64) string {
	if w == nil {
		return Placeholder
	}
	return FormatNumber(*w)
}

func FormatCount(n *int) string {
	if n == nil {
		return Placeholder
	}
	return strconv.Itoa(*n)
}

// FormatSigned prints a delta with an explicit sign, green when positive.
func FormatSigned(v float64) string {
	switch {
	case v > 0:
		return StyleGreen.Render("+" + FormatNumber(v))
	case v < 0:
		return StyleRed.Render(FormatNumber(v))
	default:
		return Dim("±0")
	}
}

// FormatRest converts seconds to "1m 30s" form.
func FormatRest(seconds int) string {
	if seconds <= 0 {
		return Placeholder
	}
	d := time.Duration(seconds) * time.Second
	m, s := int(d.Minutes()), seconds%60
	switch {
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
