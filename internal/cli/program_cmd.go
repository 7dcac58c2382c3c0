package cli

import (
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/spf13/cobra"
)

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "program",
		Aliases: []string{"programs"},
		Short:   "Browse and manage training days",
	}
	cmd.AddCommand(
		newProgramListCmd(app),
		newProgramShowCmd(app),
		newProgramImportCmd(app),
		newProgramDeleteCmd(app),
	)
	return cmd
}

func newProgramListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			programs, err := w.Catalog.ListPrograms(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgramList(programs))
			return nil
		},
	}
}

func newProgramShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a program's exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			p, err := w.Catalog.Program(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgram(p))
			return nil
		},
	}
}

func newProgramImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import custom programs from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			imported, err := w.Catalog.ImportPrograms(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, p := range imported {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s, %d exercises)\n",
					formatter.Bold(p.Name), p.ID, len(p.Exercises))
			}
			return nil
		},
	}
}

func newProgramDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a custom program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, cmd, yes, fmt.Sprintf("Delete custom program %s?", args[0]))
			if err != nil || !ok {
				return err
			}
			deleted, err := w.Catalog.DeleteCustomProgram(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no custom program %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted program %s.\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercise",
		Aliases: []string{"exercises"},
		Short:   "Browse the exercise library",
	}
	cmd.AddCommand(
		newExerciseListCmd(app),
		newExerciseAddCmd(app),
		newExerciseHistoryCmd(app),
	)
	return cmd
}

func newExerciseListCmd(app *App) *cobra.Command {
	var muscle string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercises grouped by muscle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			all, err := w.Catalog.ListAllExercises(cmd.Context())
			if err != nil {
				return err
			}
			order, groups := service.GroupByMuscle(all)
			if muscle != "" {
				if _, ok := groups[muscle]; !ok {
					return fmt.Errorf("no muscle group %q", muscle)
				}
				order = []string{muscle}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLibrary(order, groups))
			return nil
		},
	}
	cmd.Flags().StringVar(&muscle, "muscle", "", "Only show this muscle group")
	return cmd
}

func newExerciseAddCmd(app *App) *cobra.Command {
	var muscle string
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a custom exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			ex, err := w.Catalog.AddCustomExercise(cmd.Context(), args[0], muscle)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (%s)\n", formatter.Bold(ex.Name), ex.MuscleGroup, ex.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&muscle, "muscle", "", "Muscle group (default Other)")
	return cmd
}

func newExerciseHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history EXERCISE_ID",
		Short: "Show the last sessions that logged an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			appearances := w.Sessions.ExerciseHistory(args[0])
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatExerciseHistory(exerciseName(w.Sessions.History(), args[0]), appearances, app.now()))
			return nil
		},
	}
}
