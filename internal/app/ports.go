package app

import (
	"context"
)

// StatusUseCase summarizes the active user's state for the dashboard.
type StatusUseCase interface {
	Status(ctx context.Context) (*StatusResponse, error)
}

var _ StatusUseCase = (*Workspace)(nil)
