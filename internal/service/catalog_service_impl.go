package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/catalog"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
	tmpl "github.com/alexanderramin/liftlog/internal/template"
)

// CustomIDPrefix marks ids generated for user-created programs and exercises.
const CustomIDPrefix = "custom_"

type catalogService struct {
	userID    string
	programs  repository.ProgramRepo
	exercises repository.ExerciseRepo
	opts      options
}

func NewCatalogService(userID string, programs repository.ProgramRepo, exercises repository.ExerciseRepo, opts ...Option) CatalogService {
	return &catalogService{
		userID:    userID,
		programs:  programs,
		exercises: exercises,
		opts:      buildOptions(opts),
	}
}

func (s *catalogService) ListBuiltInPrograms(ctx context.Context) ([]domain.ProgramTemplate, error) {
	return catalog.Programs()
}

func (s *catalogService) ListCustomPrograms(ctx context.Context) ([]domain.ProgramTemplate, error) {
	if s.userID == "" {
		return nil, nil
	}
	return s.programs.List(ctx, s.userID)
}

// ListPrograms returns built-in programs followed by custom ones.
func (s *catalogService) ListPrograms(ctx context.Context) ([]domain.ProgramTemplate, error) {
	builtIn, err := s.ListBuiltInPrograms(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.ListCustomPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom programs: %w", err)
	}
	return append(builtIn, custom...), nil
}

func (s *catalogService) Program(ctx context.Context, id string) (*domain.ProgramTemplate, error) {
	all, err := s.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("program %q: %w", id, repository.ErrNotFound)
}

// SaveCustomProgram upserts by id. Custom programs may not shadow built-ins.
func (s *catalogService) SaveCustomProgram(ctx context.Context, p domain.ProgramTemplate) (err error) {
	if s.userID == "" {
		return ErrNoActiveUser
	}
	startedAt := s.opts.now()
	defer func() {
		observeUseCase(ctx, s.opts.observer, "save-custom-program", startedAt, map[string]any{"program": p.ID}, err)
	}()
	return s.saveCustom(ctx, []domain.ProgramTemplate{p})
}

// saveCustom checks every program before touching storage, then merges them
// into the custom list with a single write.
func (s *catalogService) saveCustom(ctx context.Context, programs []domain.ProgramTemplate) error {
	builtIn, err := catalog.Programs()
	if err != nil {
		return err
	}
	reserved := make(map[string]bool, len(builtIn))
	for _, b := range builtIn {
		reserved[b.ID] = true
	}

	incoming := make([]domain.ProgramTemplate, 0, len(programs))
	replaced := make(map[string]bool, len(programs))
	for _, p := range programs {
		p = p.Clone()
		p.IsCustom = true
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProgram, err)
		}
		if reserved[p.ID] {
			return fmt.Errorf("%w: id %q belongs to a built-in program", ErrInvalidProgram, p.ID)
		}
		incoming = append(incoming, p)
		replaced[p.ID] = true
	}

	custom, err := s.programs.List(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("listing custom programs: %w", err)
	}
	next := make([]domain.ProgramTemplate, 0, len(custom)+len(incoming))
	for _, c := range custom {
		if !replaced[c.ID] {
			next = append(next, c)
		}
	}
	next = append(next, incoming...)
	return s.programs.SaveAll(ctx, s.userID, next)
}

func (s *catalogService) DeleteCustomProgram(ctx context.Context, id string) (bool, error) {
	if s.userID == "" {
		return false, ErrNoActiveUser
	}
	custom, err := s.programs.List(ctx, s.userID)
	if err != nil {
		return false, fmt.Errorf("listing custom programs: %w", err)
	}
	next := make([]domain.ProgramTemplate, 0, len(custom))
	for _, c := range custom {
		if c.ID != id {
			next = append(next, c)
		}
	}
	if len(next) == len(custom) {
		return false, nil
	}
	if err := s.programs.SaveAll(ctx, s.userID, next); err != nil {
		return false, err
	}
	return true, nil
}

// ImportPrograms loads a YAML program file and saves every program in it.
// Nothing is saved when any program is invalid.
func (s *catalogService) ImportPrograms(ctx context.Context, path string) (_ []domain.ProgramTemplate, err error) {
	if s.userID == "" {
		return nil, ErrNoActiveUser
	}
	startedAt := s.opts.now()
	defer func() {
		observeUseCase(ctx, s.opts.observer, "import-programs", startedAt, map[string]any{"path": path}, err)
	}()

	file, err := tmpl.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}
	programs, err := tmpl.Execute(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}
	if err := s.saveCustom(ctx, programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (s *catalogService) ListAllExercises(ctx context.Context) ([]domain.LibraryExercise, error) {
	lib, err := catalog.Library()
	if err != nil {
		return nil, err
	}
	if s.userID == "" {
		return lib, nil
	}
	custom, err := s.exercises.List(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("listing custom exercises: %w", err)
	}
	return append(lib, custom...), nil
}

func (s *catalogService) AddCustomExercise(ctx context.Context, name, muscleGroup string) (*domain.LibraryExercise, error) {
	if s.userID == "" {
		return nil, ErrNoActiveUser
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	custom, err := s.exercises.List(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("listing custom exercises: %w", err)
	}
	ex := domain.LibraryExercise{
		ID:          CustomIDPrefix + s.opts.newID(),
		Name:        name,
		MuscleGroup: domain.CoalesceStr(strings.TrimSpace(muscleGroup), "Other"),
		IsCustom:    true,
	}
	if err := s.exercises.SaveAll(ctx, s.userID, append(custom, ex)); err != nil {
		return nil, err
	}
	return &ex, nil
}

// GroupByMuscle buckets exercises by muscle group, keeping first-seen group
// order.
func GroupByMuscle(exercises []domain.LibraryExercise) ([]string, map[string][]domain.LibraryExercise) {
	var order []string
	groups := make(map[string][]domain.LibraryExercise)
	for _, ex := range exercises {
		if _, ok := groups[ex.MuscleGroup]; !ok {
			order = append(order, ex.MuscleGroup)
		}
		groups[ex.MuscleGroup] = append(groups[ex.MuscleGroup], ex)
	}
	return order, groups
}
