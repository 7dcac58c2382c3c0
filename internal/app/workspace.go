package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/service"
)

// Workspace bundles every service scoped to one user.
type Workspace struct {
	User      *domain.User
	Sessions  service.SessionStore
	Catalog   service.CatalogService
	Weight    service.WeightService
	Settings  service.SettingsService
	Progress  service.ProgressService
	Export    service.ExportService
	Integrity service.IntegrityService
}

// NewUserService wires the profile service, which is not user scoped.
func NewUserService(database *sql.DB, opts ...service.Option) service.UserService {
	kv := repository.NewSQLiteKVStore(database)
	return service.NewUserService(
		repository.NewSQLiteUserRepo(database),
		repository.NewKVSettingsRepo(kv),
		db.NewSQLiteUnitOfWork(database),
		opts...,
	)
}

// ResolveUser returns the profile named by override, or the logged-in one
// when override is blank.
func ResolveUser(ctx context.Context, users service.UserService, override string) (*domain.User, error) {
	if strings.TrimSpace(override) != "" {
		return users.Lookup(ctx, override)
	}
	return users.Current(ctx)
}

// Open loads user's records and wires the workspace over database.
func Open(ctx context.Context, database *sql.DB, user *domain.User, opts ...service.Option) (*Workspace, error) {
	if user == nil {
		return nil, service.ErrNoActiveUser
	}
	kv := repository.NewSQLiteKVStore(database)
	programs := repository.NewKVProgramRepo(kv)
	exercises := repository.NewKVExerciseRepo(kv)
	weights := repository.NewKVWeightRepo(kv)
	catalog := service.NewCatalogService(user.ID, programs, exercises, opts...)

	sessions, err := service.NewSessionStore(ctx, user.ID,
		repository.NewKVSessionRepo(kv),
		db.NewSQLiteUnitOfWork(database),
		catalog,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	return &Workspace{
		User:      user,
		Sessions:  sessions,
		Catalog:   catalog,
		Weight:    service.NewWeightService(user.ID, weights, opts...),
		Settings:  service.NewSettingsService(user.ID, repository.NewKVSettingsRepo(kv)),
		Progress:  service.NewProgressService(sessions),
		Export:    service.NewExportService(sessions),
		Integrity: service.NewIntegrityService(user, sessions, programs, exercises, weights),
	}, nil
}
