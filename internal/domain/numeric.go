package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinEffortReserve = 0
	MaxEffortReserve = 5
)

// parseNumber accepts a decimal comma as well as a dot. Empty, non-numeric,
// NaN and infinite input all yield ok=false.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseWeightInput returns nil for empty, garbage or negative input.
func ParseWeightInput(raw string) *float64 {
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		return nil
	}
	return &v
}

// ParseCountInput parses a rep count. Fractions and negatives yield nil.
func ParseCountInput(raw string) *int {
	v, ok := parseNumber(raw)
	if !ok || v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return nil
	}
	n := int(v)
	return &n
}

// ParseEffortInput parses an effort-reserve value, rounding to the nearest
// whole rep and clamping into [MinEffortReserve, MaxEffortReserve].
func ParseEffortInput(raw string) *int {
	v, ok := parseNumber(raw)
	if !ok {
		return nil
	}
	n := ClampEffort(int(math.Round(math.Max(math.Min(v, 1e6), -1e6))))
	return &n
}

func ClampEffort(v int) int {
	return min(max(v, MinEffortReserve), MaxEffortReserve)
}
