package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [EXERCISE_ID]",
		Short: "Show the estimated 1RM trend of an exercise",
		Long: "Without an argument, lists the exercises with logged history.\n" +
			"EXERCISE_ID is a library id (chest_1) or a program exercise id.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTracked(w.Progress.TrackedExercises(), app.now()))
				return nil
			}
			name := exerciseName(w.Sessions.History(), args[0])
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(name, w.Progress.Progress(args[0]), app.now()))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export logged sets",
	}
	cmd.AddCommand(newExportCSVCmd(app), newExportTopSetsCmd(app))
	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write every logged set as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return w.Export.WriteCSV(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := w.Export.WriteCSV(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d sets to %s.\n", len(w.Export.Rows()), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newExportTopSetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "top-sets",
		Short: "Show the top set of every exercise in every session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.workspace(cmd.Context())
			if err != nil {
				return err
			}
			rows := w.Export.TopSetReport()
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No top sets logged yet."))
				return nil
			}
			headers := []string{"DATE", "PROGRAM", "EXERCISE", "WEIGHT", "REPS", "RIR"}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{
					r.Date,
					r.Program,
					r.Exercise,
					formatter.FormatNumber(r.Weight),
					strconv.Itoa(r.Reps),
					formatter.FormatCount(r.Effort),
				})
			}
			align := []formatter.Align{
				formatter.AlignLeft, formatter.AlignLeft, formatter.AlignLeft,
				formatter.AlignRight, formatter.AlignRight, formatter.AlignRight,
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Top sets", formatter.RenderTableAligned(headers, table, align)))
			return nil
		},
	}
}
