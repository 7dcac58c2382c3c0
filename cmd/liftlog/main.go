package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/liftlog/internal/cli"
	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/config"
	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var opts []service.Option
	if cfg.Log.UseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	if cfg.Display.NoColor || !isTerminal(os.Stdout) {
		formatter.DisableColor()
	}

	app := cli.NewApp(database, cfg, opts...)

	// Prompts and the rest timer need a terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	return cli.NewRootCmd(app).Execute()
}
