package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage local profiles",
	}
	cmd.AddCommand(
		newUserRegisterCmd(app),
		newUserLoginCmd(app),
		newUserLogoutCmd(app),
		newUserWhoamiCmd(app),
		newUserListCmd(app),
		newUserDeleteCmd(app),
	)
	return cmd
}

func newUserRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register NAME",
		Short: "Create a profile and log in as it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Register(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s and logged in.\n", formatter.Bold(u.Name))
			return nil
		},
	}
}

func newUserLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login NAME",
		Short: "Switch to an existing profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", formatter.Bold(u.Name))
			return nil
		},
	}
}

func newUserLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newUserWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Current(cmd.Context())
			if errors.Is(err, service.ErrNoActiveUser) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Not logged in."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.Name)
			return nil
		},
	}
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, err := app.Users.List(ctx)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles. Create one with 'liftlog user register NAME'.")
				return nil
			}
			activeID := ""
			if cur, err := app.Users.Current(ctx); err == nil {
				activeID = cur.ID
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				marker := ""
				if u.ID == activeID {
					marker = formatter.StyleGreen.Render("●")
				}
				rows = append(rows, []string{marker, formatter.Bold(u.Name), formatter.HumanDate(u.CreatedAt, app.now())})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Profiles",
				formatter.RenderTable([]string{"", "NAME", "CREATED"}, rows)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newUserDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a profile and all of its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := app.Users.Lookup(ctx, args[0])
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, cmd, yes,
				fmt.Sprintf("Delete %s and all of their workouts?", u.Name))
			if err != nil || !ok {
				return err
			}
			removed, err := app.Users.Delete(ctx, u.Name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%d records).\n", u.Name, removed)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
