package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ws "github.com/alexanderramin/liftlog/internal/app"
	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNoDraft = errors.New("no open workout: start one with 'liftlog workout start PROGRAM'")

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Log the workout in progress",
	}
	cmd.AddCommand(
		newWorkoutStartCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutSetCmd(app),
		newWorkoutLogCmd(app),
		newWorkoutToggleCmd(app),
		newWorkoutAddSetCmd(app),
		newWorkoutRemoveSetCmd(app),
		newWorkoutNoteCmd(app),
		newWorkoutFinishCmd(app),
		newWorkoutDiscardCmd(app),
		newWorkoutRestCmd(app),
	)
	return cmd
}

// openDraft opens the workspace and returns the draft, or errNoDraft.
func openDraft(ctx context.Context, app *App) (*ws.Workspace, *domain.Session, error) {
	w, err := app.workspace(ctx)
	if err != nil {
		return nil, nil, err
	}
	draft := w.Sessions.Draft()
	if draft == nil {
		return nil, nil, errNoDraft
	}
	return w, draft, nil
}

// sessionView gathers the advanced flag and last performances for display.
func sessionView(ctx context.Context, app *App, w *ws.Workspace, s *domain.Session) (formatter.SessionView, error) {
	advanced, err := w.Settings.AdvancedMode(ctx)
	if err != nil {
		return formatter.SessionView{}, err
	}
	view := formatter.SessionView{
		Now:      app.now(),
		Advanced: advanced,
		Previous: make(map[string]*service.SetPerformance),
	}
	if s.Status == domain.SessionDraft {
		for _, ex := range s.Exercises {
			id := domain.CoalesceStr(ex.LibraryID, ex.TemplateExerciseID)
			if perf, ok := w.Sessions.LastSessionExerciseData(id); ok {
				view.Previous[ex.TemplateExerciseID] = perf
			}
		}
	}
	return view, nil
}

func printSession(ctx context.Context, cmd *cobra.Command, app *App, w *ws.Workspace, s *domain.Session) error {
	view, err := sessionView(ctx, app, w, s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSession(s, view))
	return nil
}

func newWorkoutStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start PROGRAM_ID",
		Short: "Start a workout from a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			draft, started, err := w.Sessions.StartSession(ctx, args[0])
			if err != nil {
				return err
			}
			if draft == nil {
				return fmt.Errorf("unknown program %q: see 'liftlog program list'", args[0])
			}
			if !started {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
					formatter.StyleYellow.Render("A workout is already open. Finish or discard it first."))
			}
			return printSession(ctx, cmd, app, w, draft)
		},
	}
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the open workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, draft, err := openDraft(cmd.Context(), app)
			if err != nil {
				return err
			}
			return printSession(cmd.Context(), cmd, app, w, draft)
		},
	}
}

func newWorkoutSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set EXERCISE SET FIELD VALUE",
		Short: "Set weight, reps or effort of one set",
		Long: "Set one field of a set. EXERCISE and SET are the numbers shown by\n" +
			"'workout show'. FIELD is weight, reps or effort. An empty VALUE clears it.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ex, err := resolveExercise(draft, args[0])
			if err != nil {
				return err
			}
			set, err := resolveSet(ex, args[1])
			if err != nil {
				return err
			}
			field, err := domain.ParseSetField(args[2])
			if err != nil {
				return err
			}
			if _, err := w.Sessions.UpdateSetField(ctx, ex.ID, set.ID, field, args[3]); err != nil {
				return err
			}
			return printSetLine(cmd, w, ex.ID, set.ID)
		},
	}
}

func newWorkoutLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log EXERCISE SET WEIGHT REPS [EFFORT]",
		Short: "Record a set and mark it done",
		Args:  cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ex, err := resolveExercise(draft, args[0])
			if err != nil {
				return err
			}
			set, err := resolveSet(ex, args[1])
			if err != nil {
				return err
			}
			fields := []domain.SetField{domain.FieldWeight, domain.FieldReps, domain.FieldEffortReserve}
			for i, raw := range args[2:] {
				if _, err := w.Sessions.UpdateSetField(ctx, ex.ID, set.ID, fields[i], raw); err != nil {
					return err
				}
			}
			if !set.IsCompleted {
				if _, err := w.Sessions.ToggleSetCompleted(ctx, ex.ID, set.ID); err != nil {
					return err
				}
			}
			return printSetLine(cmd, w, ex.ID, set.ID)
		},
	}
}

func newWorkoutToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle EXERCISE SET",
		Short: "Mark a set done or not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ex, err := resolveExercise(draft, args[0])
			if err != nil {
				return err
			}
			set, err := resolveSet(ex, args[1])
			if err != nil {
				return err
			}
			if _, err := w.Sessions.ToggleSetCompleted(ctx, ex.ID, set.ID); err != nil {
				return err
			}
			return printSetLine(cmd, w, ex.ID, set.ID)
		},
	}
}

func newWorkoutAddSetCmd(app *App) *cobra.Command {
	var kind domain.SetKind
	cmd := &cobra.Command{
		Use:   "add-set EXERCISE",
		Short: "Add a set to an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ex, err := resolveExercise(draft, args[0])
			if err != nil {
				return err
			}
			added, err := w.Sessions.AddSet(ctx, ex.ID, kind)
			if err != nil {
				return err
			}
			if added == nil {
				return fmt.Errorf("could not add a set to %s", ex.Name)
			}
			return printSetLine(cmd, w, ex.ID, added.ID)
		},
	}
	cmd.Flags().Var(newSetKindValue(&kind, domain.SetBackOff), "kind", "Set kind: ramp-up, top or back-off")
	return cmd
}

func newWorkoutRemoveSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-set EXERCISE SET",
		Short: "Remove a set from an exercise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ex, err := resolveExercise(draft, args[0])
			if err != nil {
				return err
			}
			set, err := resolveSet(ex, args[1])
			if err != nil {
				return err
			}
			if _, err := w.Sessions.RemoveSet(ctx, ex.ID, set.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s set %s from %s.\n", set.Kind.Label(), args[1], ex.Name)
			return nil
		},
	}
}

func newWorkoutNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note EXERCISE [TEXT...]",
		Short: "Set the setup note of an exercise (empty clears it)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ex, err := resolveExercise(draft, args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if _, err := w.Sessions.UpdateExerciseNote(ctx, ex.TemplateExerciseID, text); err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared setup note for %s.\n", ex.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Setup note for %s: %s\n", ex.Name, text)
			return nil
		},
	}
}

func newWorkoutFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Save the open workout to history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, _, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			done, err := w.Sessions.SaveSession(ctx)
			if err != nil {
				return err
			}
			if done == nil {
				return errNoDraft
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %d sets logged.\n",
				formatter.Bold(done.TemplateName), done.LoggedSetCount())
			return nil
		},
	}
}

func newWorkoutDiscardCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "discard",
		Short: "Throw away the open workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, draft, err := openDraft(ctx, app)
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, cmd, yes,
				fmt.Sprintf("Discard %s with %d logged sets?", draft.TemplateName, draft.LoggedSetCount()))
			if err != nil || !ok {
				return err
			}
			if _, err := w.Sessions.DiscardSession(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Workout discarded.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// printSetLine re-reads the draft and prints one set after a mutation.
func printSetLine(cmd *cobra.Command, w *ws.Workspace, entryID, setID string) error {
	draft := w.Sessions.Draft()
	if draft == nil {
		return errNoDraft
	}
	ex, ok := draft.Exercise(entryID)
	if !ok {
		return fmt.Errorf("exercise %s vanished from the workout", entryID)
	}
	i := ex.SetIndex(setID)
	if i < 0 {
		return fmt.Errorf("set %s vanished from %s", setID, ex.Name)
	}
	set := ex.Sets[i]
	line := fmt.Sprintf("%s set %d  %s  %s x %s",
		ex.Name, i+1, formatter.SetKindBadge(set.Kind),
		formatter.FormatWeight(set.Weight), formatter.FormatCount(set.Reps))
	if set.EffortReserve != nil {
		line += fmt.Sprintf("  RIR %d", *set.EffortReserve)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line+"  "+formatter.CompletedMark(set.IsCompleted))
	return nil
}

func newWorkoutRestCmd(app *App) *cobra.Command {
	var seconds int
	cmd := &cobra.Command{
		Use:   "rest [EXERCISE]",
		Short: "Run a rest timer between sets",
		Long: "Count down the rest before the next set. The length comes from --seconds,\n" +
			"then the exercise's programmed rest, then the configured default.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := ""
			rest := seconds
			if len(args) == 1 {
				_, draft, err := openDraft(cmd.Context(), app)
				if err != nil {
					return err
				}
				ex, err := resolveExercise(draft, args[0])
				if err != nil {
					return err
				}
				label = ex.Name
				if rest <= 0 && !ex.ContextualNotes.IsZero() {
					rest = ex.ContextualNotes.RestSeconds
				}
			}
			if rest <= 0 {
				rest = app.restSeconds()
			}

			if !app.interactive() {
				fmt.Fprintf(cmd.OutOrStdout(), "Rest %s%s.\n", formatter.FormatRest(rest), labelSuffix(label))
				return nil
			}
			run := app.RunProgram
			if run == nil {
				run = runProgram
			}
			return run(newRestTimerModel(label, time.Duration(rest)*time.Second))
		},
	}
	cmd.Flags().IntVarP(&seconds, "seconds", "s", 0, "Rest length in seconds")
	return cmd
}

func labelSuffix(label string) string {
	if label == "" {
		return ""
	}
	return " before the next set of " + label
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
