// Package cli wires the barcut commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
	"github.com/spf13/cobra"
)

// App holds the state shared by all commands.
type App struct {
	ConfigPath string
	Config     model.AppConfig
	Logger     *slog.Logger
	Level      *slog.LevelVar
	Now        func() time.Time
}

// NewApp returns an App logging to w at Info level.
func NewApp(configPath string, w io.Writer) *App {
	level := new(slog.LevelVar)
	return &App{
		ConfigPath: configPath,
		Config:     model.DefaultAppConfig(),
		Logger:     slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		Level:      level,
		Now:        time.Now,
	}
}

// NewRootCmd creates the top-level "barcut" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "barcut",
		Short:         "Cutting plans for linear stock bars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && app.Level != nil {
				app.Level.Set(slog.LevelDebug)
			}
			return app.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", app.ConfigPath, "Path to the configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSolveCmd(app),
		newCompareCmd(app),
		newConfigCmd(app),
	)

	return root
}

func (app *App) loadConfig() error {
	cfg, err := project.LoadAppConfig(app.ConfigPath)
	if err != nil {
		return err
	}
	app.Config = cfg
	app.Logger.Debug("config loaded", "path", app.ConfigPath)
	return nil
}

func (app *App) saveConfig() error {
	if err := project.SaveAppConfig(app.ConfigPath, app.Config); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	app.Logger.Debug("config saved", "path", app.ConfigPath)
	return nil
}
