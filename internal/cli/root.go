package cli

import (
	"context"
	"database/sql"
	"time"

	ws "github.com/alexanderramin/liftlog/internal/app"
	"github.com/alexanderramin/liftlog/internal/config"
	"github.com/alexanderramin/liftlog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need to open a user's workspace.
type App struct {
	DB      *sql.DB
	Users   service.UserService
	Options []service.Option

	// UserOverride selects a profile by name instead of the logged-in one.
	UserOverride string
	RestSeconds  int

	IsInteractive func() bool
	// Confirm asks a yes/no question. Defaults to a huh form.
	Confirm func(title string) (bool, error)
	// RunProgram runs a bubbletea model to completion.
	RunProgram func(m tea.Model) error
	Now        func() time.Time
}

// NewApp wires an App over database using cfg.
func NewApp(database *sql.DB, cfg *config.Config, opts ...service.Option) *App {
	return &App{
		DB:           database,
		Users:        ws.NewUserService(database, opts...),
		Options:      opts,
		UserOverride: cfg.User,
		RestSeconds:  cfg.Workout.RestSeconds,
	}
}

func (a *App) workspace(ctx context.Context) (*ws.Workspace, error) {
	user, err := ws.ResolveUser(ctx, a.Users, a.UserOverride)
	if err != nil {
		return nil, err
	}
	return ws.Open(ctx, a.DB, user, a.Options...)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) restSeconds() int {
	if a.RestSeconds > 0 {
		return a.RestSeconds
	}
	return config.DefaultRestSeconds
}

// NewRootCmd creates the top-level "liftlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "liftlog",
		Short:         "Workout logger for ramp-up, top set and back-off training",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.UserOverride, "user", app.UserOverride,
		"Act as this profile instead of the logged-in one")

	root.AddCommand(
		newUserCmd(app),
		newProgramCmd(app),
		newExerciseCmd(app),
		newWorkoutCmd(app),
		newHistoryCmd(app),
		newWeightCmd(app),
		newProgressCmd(app),
		newExportCmd(app),
		newSettingsCmd(app),
		newStatusCmd(app),
		newCheckCmd(app),
	)
	return root
}
