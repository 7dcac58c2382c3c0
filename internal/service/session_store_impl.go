package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

// ExerciseHistoryLimit caps ExerciseHistory results.
const ExerciseHistoryLimit = 5

type sessionStore struct {
	mu       sync.Mutex
	userID   string
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	programs ProgramLookup
	opts     options

	history []*domain.Session
	draft   *domain.Session
	// notes maps a template exercise id to the newest non-blank setup note
	// found in history.
	notes map[string]string
}

// NewSessionStore loads the user's history and draft. The unit of work is
// used for commits, which write history and clear the draft atomically.
func NewSessionStore(
	ctx context.Context,
	userID string,
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	programs ProgramLookup,
	opts ...Option,
) (SessionStore, error) {
	if userID == "" {
		return nil, ErrNoActiveUser
	}
	history, err := sessions.ListHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	draft, err := sessions.GetDraft(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading draft: %w", err)
	}
	s := &sessionStore{
		userID:   userID,
		sessions: sessions,
		uow:      uow,
		programs: programs,
		opts:     buildOptions(opts),
		history:  history,
		draft:    draft,
	}
	s.rebuildNotes()
	return s, nil
}

func (s *sessionStore) StartSession(ctx context.Context, templateID string) (draft *domain.Session, started bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft != nil {
		return s.draft.Clone(), false, nil
	}

	startedAt := s.opts.now()
	fields := map[string]any{"template": templateID}
	defer func() {
		if started || err != nil {
			observeUseCase(ctx, s.opts.observer, "start-session", startedAt, fields, err)
		}
	}()

	program, err := s.programs.Program(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	next := &domain.Session{
		ID:           s.opts.newID(),
		UserID:       s.userID,
		TemplateID:   program.ID,
		TemplateName: program.Name,
		Status:       domain.SessionDraft,
		StartedAt:    startedAt,
		Exercises:    make([]domain.ExerciseEntry, 0, len(program.Exercises)),
	}
	for i := range program.Exercises {
		tpl := &program.Exercises[i]
		entry := domain.ExerciseEntry{
			ID:                 s.opts.newID(),
			TemplateExerciseID: tpl.ID,
			LibraryID:          tpl.LibraryID,
			Name:               tpl.Name,
			Sets:               tpl.MaterializeSets(s.opts.newID),
			SetupNote:          s.notes[tpl.ID],
		}
		if !tpl.ContextualNotes.IsZero() {
			notes := *tpl.ContextualNotes
			entry.ContextualNotes = &notes
		}
		next.Exercises = append(next.Exercises, entry)
	}
	fields["exercise_count"] = len(next.Exercises)

	if err = s.sessions.SaveDraft(ctx, s.userID, next); err != nil {
		return nil, false, fmt.Errorf("saving draft: %w", err)
	}
	s.draft = next
	return next.Clone(), true, nil
}

func (s *sessionStore) UpdateSetField(ctx context.Context, exerciseEntryID, setID string, field domain.SetField, raw string) (bool, error) {
	return s.mutateDraft(ctx, func(d *domain.Session) bool {
		return d.SetField(exerciseEntryID, setID, field, raw, s.opts.now())
	})
}

func (s *sessionStore) ToggleSetCompleted(ctx context.Context, exerciseEntryID, setID string) (bool, error) {
	return s.mutateDraft(ctx, func(d *domain.Session) bool {
		ex, ok := d.Exercise(exerciseEntryID)
		if !ok {
			return false
		}
		idx := ex.SetIndex(setID)
		if idx < 0 {
			return false
		}
		ex.Sets[idx].IsCompleted = !ex.Sets[idx].IsCompleted
		return true
	})
}

func (s *sessionStore) AddSet(ctx context.Context, exerciseEntryID string, kind domain.SetKind) (*domain.SetEntry, error) {
	if !kind.Valid() {
		return nil, nil
	}
	var added *domain.SetEntry
	changed, err := s.mutateDraft(ctx, func(d *domain.Session) bool {
		ex, ok := d.Exercise(exerciseEntryID)
		if !ok {
			return false
		}
		set := domain.NewSetEntry(s.opts.newID(), kind)
		ex.InsertSet(set)
		added = &set
		return true
	})
	if err != nil || !changed {
		return nil, err
	}
	return added, nil
}

func (s *sessionStore) RemoveSet(ctx context.Context, exerciseEntryID, setID string) (bool, error) {
	return s.mutateDraft(ctx, func(d *domain.Session) bool {
		ex, ok := d.Exercise(exerciseEntryID)
		if !ok {
			return false
		}
		return ex.RemoveSet(setID)
	})
}

func (s *sessionStore) UpdateExerciseNote(ctx context.Context, templateExerciseID, text string) (bool, error) {
	return s.mutateDraft(ctx, func(d *domain.Session) bool {
		matched := false
		for i := range d.Exercises {
			if d.Exercises[i].TemplateExerciseID == templateExerciseID {
				d.Exercises[i].SetupNote = text
				matched = true
			}
		}
		return matched
	})
}

// mutateDraft applies fn to a copy of the draft and swaps the copy in only
// once it has been persisted.
func (s *sessionStore) mutateDraft(ctx context.Context, fn func(d *domain.Session) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return false, nil
	}
	next := s.draft.Clone()
	if !fn(next) {
		return false, nil
	}
	if err := s.sessions.SaveDraft(ctx, s.userID, next); err != nil {
		return false, fmt.Errorf("saving draft: %w", err)
	}
	s.draft = next
	return true, nil
}

func (s *sessionStore) SaveSession(ctx context.Context) (completed *domain.Session, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return nil, nil
	}

	startedAt := s.opts.now()
	fields := map[string]any{"session_id": s.draft.ID}
	defer func() {
		observeUseCase(ctx, s.opts.observer, "save-session", startedAt, fields, err)
	}()

	completed = s.draft.Complete(startedAt)
	history := make([]*domain.Session, 0, len(s.history)+1)
	history = append(history, completed)
	history = append(history, s.history...)
	fields["exercise_count"] = len(completed.Exercises)
	fields["logged_sets"] = completed.LoggedSetCount()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewKVSessionRepo(repository.NewSQLiteKVStore(tx))
		if err := txSessions.SaveHistory(ctx, s.userID, history); err != nil {
			return fmt.Errorf("saving history: %w", err)
		}
		if err := txSessions.DeleteDraft(ctx, s.userID); err != nil {
			return fmt.Errorf("clearing draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.history = history
	s.draft = nil
	s.indexNotes(completed)
	return completed.Clone(), nil
}

func (s *sessionStore) DiscardSession(ctx context.Context) (discarded bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return false, nil
	}
	startedAt := s.opts.now()
	defer func() {
		observeUseCase(ctx, s.opts.observer, "discard-session", startedAt, nil, err)
	}()

	if err = s.sessions.DeleteDraft(ctx, s.userID); err != nil {
		return false, fmt.Errorf("clearing draft: %w", err)
	}
	s.draft = nil
	return true, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context, sessionID string) (deleted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.historyIndex(sessionID)
	if idx < 0 {
		return false, nil
	}
	startedAt := s.opts.now()
	defer func() {
		observeUseCase(ctx, s.opts.observer, "delete-session", startedAt, map[string]any{"session_id": sessionID}, err)
	}()

	history := make([]*domain.Session, 0, len(s.history)-1)
	history = append(history, s.history[:idx]...)
	history = append(history, s.history[idx+1:]...)
	if err = s.sessions.SaveHistory(ctx, s.userID, history); err != nil {
		return false, fmt.Errorf("saving history: %w", err)
	}
	s.history = history
	s.rebuildNotes()
	return true, nil
}

func (s *sessionStore) Draft() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

func (s *sessionStore) History() []*domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Session, len(s.history))
	for i, h := range s.history {
		out[i] = h.Clone()
	}
	return out
}

func (s *sessionStore) Session(sessionID string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.historyIndex(sessionID)
	if idx < 0 {
		return nil, false
	}
	return s.history[idx].Clone(), true
}

func (s *sessionStore) SetupNote(templateExerciseID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes[templateExerciseID]
}

// LastSessionExerciseData returns the headline set from the most recent
// completed session that logged the exercise.
func (s *sessionStore) LastSessionExerciseData(exerciseID string) (*SetPerformance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.history {
		for i := range sess.Exercises {
			ex := &sess.Exercises[i]
			if !ex.Matches(exerciseID) {
				continue
			}
			set, ok := ex.TopPerformance()
			if !ok {
				continue
			}
			perf := &SetPerformance{
				SessionID: sess.ID,
				Date:      sess.Date(),
				Kind:      set.Kind,
				Weight:    set.WeightValue(),
				Reps:      set.RepsValue(),
			}
			if set.EffortReserve != nil {
				effort := *set.EffortReserve
				perf.EffortReserve = &effort
			}
			return perf, true
		}
	}
	return nil, false
}

func (s *sessionStore) ExerciseHistory(exerciseID string) []ExerciseAppearance {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ExerciseAppearance
	for _, sess := range s.history {
		for i := range sess.Exercises {
			ex := &sess.Exercises[i]
			if !ex.Matches(exerciseID) {
				continue
			}
			sets := make([]domain.SetEntry, len(ex.Sets))
			for j, set := range ex.Sets {
				sets[j] = set.Clone()
			}
			out = append(out, ExerciseAppearance{
				SessionID:    sess.ID,
				Date:         sess.Date(),
				TemplateName: sess.TemplateName,
				Sets:         sets,
				SetupNote:    ex.SetupNote,
			})
			break
		}
		if len(out) == ExerciseHistoryLimit {
			break
		}
	}
	return out
}

func (s *sessionStore) historyIndex(sessionID string) int {
	for i, h := range s.history {
		if h.ID == sessionID {
			return i
		}
	}
	return -1
}

// rebuildNotes walks history oldest to newest so newer notes overwrite older.
func (s *sessionStore) rebuildNotes() {
	s.notes = make(map[string]string)
	for i := len(s.history) - 1; i >= 0; i-- {
		s.indexNotes(s.history[i])
	}
}

func (s *sessionStore) indexNotes(sess *domain.Session) {
	for i := range sess.Exercises {
		ex := &sess.Exercises[i]
		if strings.TrimSpace(ex.SetupNote) != "" {
			s.notes[ex.TemplateExerciseID] = ex.SetupNote
		}
	}
}
