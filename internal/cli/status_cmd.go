package cli

import (
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the open workout, last session and body weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			resp, err := w.Status(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp, app.now()))
			return nil
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every stored record of the profile can be read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			report, err := w.Integrity.Check(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIntegrity(report))
			return nil
		},
	}
}

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change profile settings",
	}

	var toggle bool
	advanced := &cobra.Command{
		Use:   "advanced",
		Short: "Show advanced mode (RIR column and coaching notes); --toggle flips it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := app.workspace(ctx)
			if err != nil {
				return err
			}
			var on bool
			if toggle {
				on, err = w.Settings.ToggleAdvancedMode(ctx)
			} else {
				on, err = w.Settings.AdvancedMode(ctx)
			}
			if err != nil {
				return err
			}
			state := formatter.Dim("off")
			if on {
				state = formatter.StyleGreen.Render("on")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Advanced mode: %s\n", state)
			return nil
		},
	}
	advanced.Flags().BoolVar(&toggle, "toggle", false, "Flip advanced mode")
	cmd.AddCommand(advanced)
	return cmd
}
