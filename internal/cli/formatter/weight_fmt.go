package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// FormatWeightStats renders the current weight and the 7-entry trend.
func FormatWeightStats(stats domain.WeightStats) string {
	if stats.Count == 0 {
		return Dim("No body weight logged.") + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n", Dim("CURRENT"), Bold(FormatNumber(stats.Current)))
	fmt.Fprintf(&b, "  %s  %s\n", Dim("AVG 7  "), FormatNumber(round1(stats.Avg7d)))
	fmt.Fprintf(&b, "  %s  %s\n", Dim("CHANGE "), FormatSigned(round1(stats.Diff7d)))
	fmt.Fprintf(&b, "  %s  %d\n", Dim("ENTRIES"), stats.Count)
	return RenderBox("Body weight", b.String())
}

// FormatWeightList renders entries in the order given.
func FormatWeightList(title string, entries []domain.WeightEntry) string {
	if len(entries) == 0 {
		return Dim("No entries.") + "\n"
	}
	headers := []string{"DATE", "WEIGHT", "NOTE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Date, FormatNumber(e.Weight), Dim(e.Note)})
	}
	return RenderBox(title, RenderTableAligned(headers, rows, []Align{AlignLeft, AlignRight}))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
