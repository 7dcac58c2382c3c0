package domain

import (
	"sort"
	"time"
)

// PlateauGrowthThreshold is the minimum e1RM growth over the last three
// sessions below which an exercise is flagged as stalled.
const PlateauGrowthThreshold = 1.005

// EstimateOneRepMax uses the Epley formula: weight * (1 + reps/30).
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return weight * (1 + float64(reps)/30)
}

// ProgressPoint is the best performance of one exercise in one session.
type ProgressPoint struct {
	SessionID string
	Date      time.Time
	Kind      SetKind
	Weight    float64
	Reps      int
	E1RM      float64
}

// ProgressComparison is the delta between the last two points.
type ProgressComparison struct {
	WeightDiff float64
	RepsDiff   int
	E1RMDiff   float64
}

// BuildProgress extracts one point per completed session that logged the
// exercise, oldest first.
func BuildProgress(history []*Session, exerciseID string) []ProgressPoint {
	var points []ProgressPoint
	for _, s := range history {
		if s.Status != SessionCompleted {
			continue
		}
		for i := range s.Exercises {
			ex := &s.Exercises[i]
			if !ex.Matches(exerciseID) {
				continue
			}
			set, ok := ex.TopPerformance()
			if !ok {
				continue
			}
			points = append(points, ProgressPoint{
				SessionID: s.ID,
				Date:      s.Date(),
				Kind:      set.Kind,
				Weight:    set.WeightValue(),
				Reps:      set.RepsValue(),
				E1RM:      EstimateOneRepMax(set.WeightValue(), set.RepsValue()),
			})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// CompareLast returns the change between the two most recent points.
func CompareLast(points []ProgressPoint) (ProgressComparison, bool) {
	if len(points) < 2 {
		return ProgressComparison{}, false
	}
	cur, prev := points[len(points)-1], points[len(points)-2]
	return ProgressComparison{
		WeightDiff: cur.Weight - prev.Weight,
		RepsDiff:   cur.Reps - prev.Reps,
		E1RMDiff:   cur.E1RM - prev.E1RM,
	}, true
}

// DetectPlateau reports whether the estimated max has grown less than 0.5%
// across the last three points.
func DetectPlateau(points []ProgressPoint) bool {
	if len(points) < 3 {
		return false
	}
	last := points[len(points)-3:]
	return last[2].E1RM <= last[0].E1RM*PlateauGrowthThreshold
}
