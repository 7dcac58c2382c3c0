package app

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

type DraftStatusView struct {
	TemplateName string
	StartedAt    time.Time
	LoggedSets   int
	TotalSets    int
}

type LastSessionView struct {
	SessionID    string
	TemplateName string
	Date         time.Time
	LoggedSets   int
}

type StatusResponse struct {
	User         string
	Draft        *DraftStatusView
	LastSession  *LastSessionView
	SessionCount int
	Weight       domain.WeightStats
	AdvancedMode bool
	Warnings     []string
}

// Status reports the open draft, the newest completed session and weight
// stats. Missing pieces become warnings rather than errors.
func (w *Workspace) Status(ctx context.Context) (*StatusResponse, error) {
	resp := &StatusResponse{User: w.User.Name}

	if d := w.Sessions.Draft(); d != nil {
		view := &DraftStatusView{
			TemplateName: d.TemplateName,
			StartedAt:    d.StartedAt,
			LoggedSets:   d.LoggedSetCount(),
		}
		for _, ex := range d.Exercises {
			view.TotalSets += len(ex.Sets)
		}
		resp.Draft = view
	}

	history := w.Sessions.History()
	resp.SessionCount = len(history)
	if len(history) > 0 {
		last := history[0]
		resp.LastSession = &LastSessionView{
			SessionID:    last.ID,
			TemplateName: last.TemplateName,
			Date:         last.Date(),
			LoggedSets:   last.LoggedSetCount(),
		}
	} else {
		resp.Warnings = append(resp.Warnings, "no completed sessions yet")
	}

	stats, err := w.Weight.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("weight stats: %w", err)
	}
	resp.Weight = stats
	if stats.Count == 0 {
		resp.Warnings = append(resp.Warnings, "no body weight logged")
	}

	resp.AdvancedMode, err = w.Settings.AdvancedMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return resp, nil
}
