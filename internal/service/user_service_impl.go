package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

type userService struct {
	users    repository.UserRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	opts     options
}

func NewUserService(users repository.UserRepo, settings repository.SettingsRepo, uow db.UnitOfWork, opts ...Option) UserService {
	return &userService{users: users, settings: settings, uow: uow, opts: buildOptions(opts)}
}

// Register creates a profile and makes it the active one.
func (s *userService) Register(ctx context.Context, name string) (user *domain.User, err error) {
	startedAt := s.opts.now()
	defer func() {
		observeUseCase(ctx, s.opts.observer, "register-user", startedAt, map[string]any{"name": name}, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	user = &domain.User{ID: s.opts.newID(), Name: name, CreatedAt: startedAt}
	if err = s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err = s.settings.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("activating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, name string) (*domain.User, error) {
	user, err := s.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.settings.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("activating user: %w", err)
	}
	return user, nil
}

func (s *userService) Logout(ctx context.Context) error {
	return s.settings.ClearCurrentUser(ctx)
}

// Current returns the active profile. A pointer to a deleted profile counts
// as no active user.
func (s *userService) Current(ctx context.Context) (*domain.User, error) {
	id, err := s.settings.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading active user: %w", err)
	}
	if id == "" {
		return nil, ErrNoActiveUser
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveUser
		}
		return nil, err
	}
	return user, nil
}

// Lookup finds a profile by name, case-insensitively.
func (s *userService) Lookup(ctx context.Context, name string) (*domain.User, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUserNotFound, strings.TrimSpace(name))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Delete(ctx context.Context, name string) (removed int64, err error) {
	startedAt := s.opts.now()
	fields := map[string]any{"name": name}
	defer func() {
		observeUseCase(ctx, s.opts.observer, "delete-user", startedAt, fields, err)
	}()

	user, err := s.Lookup(ctx, name)
	if err != nil {
		return 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := repository.NewSQLiteKVStore(tx)
		txSettings := repository.NewKVSettingsRepo(kv)
		txUsers := repository.NewSQLiteUserRepo(tx)

		n, err := kv.RemoveUser(ctx, user.ID)
		if err != nil {
			return err
		}
		if err := txUsers.Delete(ctx, user.ID); err != nil {
			return err
		}
		current, err := txSettings.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if current == user.ID {
			if err := txSettings.ClearCurrentUser(ctx); err != nil {
				return err
			}
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deleting user %s: %w", user.Name, err)
	}
	fields["removed_records"] = removed
	return removed, nil
}
