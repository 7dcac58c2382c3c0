package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

// IntegrityReport counts what is stored for the active user.
type IntegrityReport struct {
	User            string
	Sessions        int
	LoggedSets      int
	HasDraft        bool
	CustomPrograms  int
	CustomExercises int
	WeightEntries   int
}

type integrityService struct {
	user      *domain.User
	sessions  SessionStore
	programs  repository.ProgramRepo
	exercises repository.ExerciseRepo
	weights   repository.WeightRepo
}

func NewIntegrityService(
	user *domain.User,
	sessions SessionStore,
	programs repository.ProgramRepo,
	exercises repository.ExerciseRepo,
	weights repository.WeightRepo,
) IntegrityService {
	return &integrityService{
		user:      user,
		sessions:  sessions,
		programs:  programs,
		exercises: exercises,
		weights:   weights,
	}
}

// Check loads every record of the user. Any decode or read error surfaces
// as the returned error.
func (s *integrityService) Check(ctx context.Context) (*IntegrityReport, error) {
	if s.user == nil {
		return nil, ErrNoActiveUser
	}
	report := &IntegrityReport{User: s.user.Name}

	history := s.sessions.History()
	report.Sessions = len(history)
	for _, sess := range history {
		report.LoggedSets += sess.LoggedSetCount()
	}
	report.HasDraft = s.sessions.Draft() != nil

	programs, err := s.programs.List(ctx, s.user.ID)
	if err != nil {
		return nil, fmt.Errorf("custom programs: %w", err)
	}
	report.CustomPrograms = len(programs)

	exercises, err := s.exercises.List(ctx, s.user.ID)
	if err != nil {
		return nil, fmt.Errorf("custom exercises: %w", err)
	}
	report.CustomExercises = len(exercises)

	weights, err := s.weights.Load(ctx, s.user.ID)
	if err != nil {
		return nil, fmt.Errorf("weight log: %w", err)
	}
	report.WeightEntries = len(weights)
	return report, nil
}
