package domain

import (
	"sort"
	"time"
)

// DateLayout is the ISO calendar date used as the weight log key.
const DateLayout = "2006-01-02"

// WeightWindow is the number of entries averaged by the weight statistics.
const WeightWindow = 7

type WeightEntry struct {
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeightStats summarizes the log. Windows count entries, not calendar days,
// so days without a weigh-in do not shrink the average.
type WeightStats struct {
	Count   int
	Current float64
	Avg7d   float64
	Diff7d  float64
}

// SortWeightEntries orders entries newest date first.
func SortWeightEntries(entries []WeightEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// ComputeWeightStats averages the latest WeightWindow entries and compares
// them against the average of the entries ranked just behind them (up to
// another WeightWindow). With nothing behind the window the diff is 0.
func ComputeWeightStats(entries []WeightEntry) WeightStats {
	if len(entries) == 0 {
		return WeightStats{}
	}
	sorted := make([]WeightEntry, len(entries))
	copy(sorted, entries)
	SortWeightEntries(sorted)

	latest := sorted[:min(WeightWindow, len(sorted))]
	stats := WeightStats{
		Count:   len(sorted),
		Current: sorted[0].Weight,
		Avg7d:   meanWeight(latest),
	}

	if len(sorted) > WeightWindow {
		prev := sorted[WeightWindow:min(2*WeightWindow, len(sorted))]
		stats.Diff7d = stats.Avg7d - meanWeight(prev)
	}
	return stats
}

func meanWeight(entries []WeightEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Weight
	}
	return sum / float64(len(entries))
}

// ParseDate validates an ISO calendar date and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
