package service

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/repository"
)

type settingsService struct {
	userID   string
	settings repository.SettingsRepo
}

func NewSettingsService(userID string, settings repository.SettingsRepo) SettingsService {
	return &settingsService{userID: userID, settings: settings}
}

func (s *settingsService) AdvancedMode(ctx context.Context) (bool, error) {
	if s.userID == "" {
		return false, ErrNoActiveUser
	}
	return s.settings.AdvancedMode(ctx, s.userID)
}

// ToggleAdvancedMode flips the flag and returns the new value.
func (s *settingsService) ToggleAdvancedMode(ctx context.Context) (bool, error) {
	current, err := s.AdvancedMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.settings.SetAdvancedMode(ctx, s.userID, !current); err != nil {
		return current, err
	}
	return !current, nil
}
