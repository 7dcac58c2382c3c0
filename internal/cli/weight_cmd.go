package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/spf13/cobra"
)

func newWeightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Track body weight",
	}
	cmd.AddCommand(
		newWeightAddCmd(app),
		newWeightDeleteCmd(app),
		newWeightListCmd(app),
		newWeightStatsCmd(app),
	)
	return cmd
}

func newWeightAddCmd(app *App) *cobra.Command {
	var date, note string
	cmd := &cobra.Command{
		Use:   "add WEIGHT",
		Short: "Log body weight for a day (replaces that day's entry)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			weight, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(args[0]), ",", ".", 1), 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			if date == "" {
				date = app.now().Format(domain.DateLayout)
			}
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			entry, err := w.Weight.SaveWeight(ctx, weight, date, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s.\n",
				formatter.Bold(formatter.FormatNumber(entry.Weight)), entry.Date)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day of the entry (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	return cmd
}

func newWeightDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete DATE",
		Short: "Delete the entry for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			deleted, err := w.Weight.DeleteWeight(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry on %s.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry on %s.\n", args[0])
			return nil
		},
	}
}

func newWeightListCmd(app *App) *cobra.Command {
	var month time.Time
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("month") {
				entries, err := w.Weight.List(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeightList("Body weight", entries))
				return nil
			}
			entries, err := w.Weight.ListMonth(ctx, month.Year(), month.Month())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeightList(month.Format("January 2006"), entries))
			return nil
		},
	}
	cmd.Flags().Var(newMonthValue(&month, app.now()), "month", "Only show one month (YYYY-MM)")
	return cmd
}

func newWeightStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show current weight and the weekly trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			stats, err := w.Weight.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeightStats(stats))
			return nil
		},
	}
}
