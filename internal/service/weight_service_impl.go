package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

type weightService struct {
	userID  string
	weights repository.WeightRepo
	opts    options
}

func NewWeightService(userID string, weights repository.WeightRepo, opts ...Option) WeightService {
	return &weightService{userID: userID, weights: weights, opts: buildOptions(opts)}
}

// SaveWeight upserts the entry for date. An existing entry keeps its
// CreatedAt.
func (s *weightService) SaveWeight(ctx context.Context, weight float64, date, note string) (*domain.WeightEntry, error) {
	if s.userID == "" {
		return nil, ErrNoActiveUser
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, ErrInvalidWeight
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	entries, err := s.weights.Load(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("loading weight log: %w", err)
	}
	now := s.opts.now()
	entry := domain.WeightEntry{
		Date:      day,
		Weight:    weight,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, ok := entries[day]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	entries[day] = entry
	if err := s.weights.Save(ctx, s.userID, entries); err != nil {
		return nil, fmt.Errorf("saving weight log: %w", err)
	}
	return &entry, nil
}

func (s *weightService) DeleteWeight(ctx context.Context, date string) (bool, error) {
	if s.userID == "" {
		return false, ErrNoActiveUser
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	entries, err := s.weights.Load(ctx, s.userID)
	if err != nil {
		return false, fmt.Errorf("loading weight log: %w", err)
	}
	if _, ok := entries[day]; !ok {
		return false, nil
	}
	delete(entries, day)
	if err := s.weights.Save(ctx, s.userID, entries); err != nil {
		return false, fmt.Errorf("saving weight log: %w", err)
	}
	return true, nil
}

func (s *weightService) Stats(ctx context.Context) (domain.WeightStats, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return domain.WeightStats{}, err
	}
	return domain.ComputeWeightStats(entries), nil
}

// List returns every entry, newest first.
func (s *weightService) List(ctx context.Context) ([]domain.WeightEntry, error) {
	if s.userID == "" {
		return nil, ErrNoActiveUser
	}
	byDate, err := s.weights.Load(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("loading weight log: %w", err)
	}
	entries := make([]domain.WeightEntry, 0, len(byDate))
	for _, e := range byDate {
		entries = append(entries, e)
	}
	domain.SortWeightEntries(entries)
	return entries, nil
}

func (s *weightService) ListMonth(ctx context.Context, year int, month time.Month) ([]domain.WeightEntry, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	var out []domain.WeightEntry
	for _, e := range all {
		if strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	return out, nil
}
