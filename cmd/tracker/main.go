package main

import (
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/cli"
	"github.com/CaptainSharky/Tracker/internal/errors"
	"github.com/CaptainSharky/Tracker/internal/logger"
	"github.com/CaptainSharky/Tracker/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/tracker/tracker.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize tracker storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add      cli.AddCmd      `cmd:"" help:"Add a new tracker."`
	Edit     cli.EditCmd     `cmd:"" help:"Edit an existing tracker."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a tracker and its records."`
	List     cli.ListCmd     `cmd:"" help:"List trackers, optionally filtered."`
	Done     cli.DoneCmd     `cmd:"" help:"Toggle a tracker's completion for a day."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show completion statistics."`
	Category cli.CategoryCmd `cmd:"" help:"Manage categories."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tracker"),
		kong.Description("Personal habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{
		Store: store,
		Cal:   calendar.New(time.Local),
	}

	// Load the store before running any command except init, which
	// handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
