package cli

import (
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse completed workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, app)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List completed workouts, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runHistoryList(cmd, app)
			},
		},
		newHistoryShowCmd(app),
		newHistoryDeleteCmd(app),
	)
	return cmd
}

func runHistoryList(cmd *cobra.Command, app *App) error {
	w, err := app.workspace(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(w.Sessions.History(), app.now()))
	return nil
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show N|ID",
		Short: "Show one completed workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			s, err := resolveHistorySession(w.Sessions.History(), args[0])
			if err != nil {
				return err
			}
			return printSession(ctx, cmd, app, w, s)
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete N|ID",
		Short: "Delete a completed workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			s, err := resolveHistorySession(w.Sessions.History(), args[0])
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, cmd, yes, fmt.Sprintf("Delete %s from %s?",
				s.TemplateName, formatter.HumanDate(s.Date(), app.now())))
			if err != nil || !ok {
				return err
			}
			deleted, err := w.Sessions.DeleteSession(ctx, s.ID)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no session %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s.\n", s.TemplateName, formatter.TruncID(s.ID))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
