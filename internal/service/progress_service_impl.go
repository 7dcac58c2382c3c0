package service

import (
	"sort"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// ProgressReport is the trend of one exercise across completed sessions.
type ProgressReport struct {
	ExerciseID    string
	Points        []domain.ProgressPoint
	Comparison    domain.ProgressComparison
	HasComparison bool
	Plateau       bool
}

// Best returns the point with the highest estimated max.
func (r ProgressReport) Best() (domain.ProgressPoint, bool) {
	if len(r.Points) == 0 {
		return domain.ProgressPoint{}, false
	}
	best := r.Points[0]
	for _, p := range r.Points[1:] {
		if p.E1RM > best.E1RM {
			best = p
		}
	}
	return best, true
}

// TrackedExercise is an exercise that appears in at least one completed
// session with a logged set.
type TrackedExercise struct {
	ID       string
	Name     string
	Sessions int
	LastDate time.Time
}

type progressService struct {
	sessions SessionStore
}

func NewProgressService(sessions SessionStore) ProgressService {
	return &progressService{sessions: sessions}
}

func (s *progressService) Progress(exerciseID string) ProgressReport {
	points := domain.BuildProgress(s.sessions.History(), exerciseID)
	report := ProgressReport{ExerciseID: exerciseID, Points: points}
	report.Comparison, report.HasComparison = domain.CompareLast(points)
	report.Plateau = domain.DetectPlateau(points)
	return report
}

// TrackedExercises lists logged exercises by template exercise id, most
// recently trained first.
func (s *progressService) TrackedExercises() []TrackedExercise {
	byID := make(map[string]*TrackedExercise)
	for _, sess := range s.sessions.History() {
		for i := range sess.Exercises {
			ex := &sess.Exercises[i]
			if len(ex.LoggedSets()) == 0 {
				continue
			}
			t, ok := byID[ex.TemplateExerciseID]
			if !ok {
				t = &TrackedExercise{ID: ex.TemplateExerciseID, Name: ex.Name}
				byID[ex.TemplateExerciseID] = t
			}
			t.Sessions++
			if d := sess.Date(); d.After(t.LastDate) {
				t.LastDate = d
			}
		}
	}
	out := make([]TrackedExercise, 0, len(byID))
	for _, t := range byID {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastDate.Equal(out[j].LastDate) {
			return out[i].LastDate.After(out[j].LastDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
