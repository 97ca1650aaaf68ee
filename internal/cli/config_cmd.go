package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/piwi3910/BarCut/internal/cli/formatter"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit the configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigInitCmd(app),
		newConfigSetCmd(app),
		newConfigPresetCmd(app),
		newConfigExportCmd(app),
		newConfigImportCmd(app),
	)
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConfig(app.ConfigPath, app.Config))
			return nil
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(app.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", app.ConfigPath)
			}
			app.Config = model.DefaultAppConfig()
			if err := app.saveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// configKeys lists the settable keys in the order they are documented.
var configKeys = []string{"stock-length", "kerf", "min-offcut", "price", "company", "timezone"}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setConfigValue(&app.Config, args[0], args[1]); err != nil {
				return err
			}
			if err := app.saveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func setConfigValue(cfg *model.AppConfig, key, value string) error {
	number := func(min float64, strict bool) (float64, error) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", key, value)
		}
		if v < min || (strict && v == min) {
			return 0, fmt.Errorf("%s: %g is out of range", key, v)
		}
		return v, nil
	}

	var err error
	switch key {
	case "stock-length":
		cfg.DefaultStockLength, err = number(0, true)
	case "kerf":
		cfg.DefaultKerf, err = number(0, false)
	case "min-offcut":
		cfg.MinOffcutLength, err = number(0, false)
	case "price":
		cfg.PricePerBar, err = number(0, false)
	case "company":
		cfg.CompanyName = value
	case "timezone":
		if _, lerr := time.LoadLocation(value); lerr != nil {
			return fmt.Errorf("timezone: %w", lerr)
		}
		cfg.TimeZone = value
	default:
		return fmt.Errorf("unknown key %q, expected one of %s", key, strings.Join(configKeys, ", "))
	}
	return err
}

func newConfigPresetCmd(app *App) *cobra.Command {
	var kerf float64
	var remove bool

	cmd := &cobra.Command{
		Use:   "preset NAME [LENGTH]",
		Short: "Add, replace or remove a stock preset",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if remove {
				if !removePreset(&app.Config, name) {
					return fmt.Errorf("unknown stock preset %q", name)
				}
				return app.saveConfig()
			}
			if len(args) < 2 {
				return fmt.Errorf("preset %s: length is required", name)
			}
			length, err := strconv.ParseFloat(args[1], 64)
			if err != nil || length <= 0 {
				return fmt.Errorf("preset %s: invalid length %q", name, args[1])
			}
			if kerf < 0 {
				return fmt.Errorf("preset %s: kerf must not be negative", name)
			}
			removePreset(&app.Config, name)
			app.Config.StockPresets = append(app.Config.StockPresets, model.StockPreset{Name: name, Length: length, Kerf: kerf})
			return app.saveConfig()
		},
	}

	cmd.Flags().Float64Var(&kerf, "kerf", 0, "Kerf used with this stock, 0 uses the default kerf")
	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the preset")
	return cmd
}

func removePreset(cfg *model.AppConfig, name string) bool {
	for i, p := range cfg.StockPresets {
		if p.Name == name {
			cfg.StockPresets = append(cfg.StockPresets[:i], cfg.StockPresets[i+1:]...)
			return true
		}
	}
	return false
}

func newConfigExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write a backup of the configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := project.ExportBackup(args[0], app.Config); err != nil {
				return err
			}
			app.Logger.Info("config backup written", "path", args[0])
			return nil
		},
	}
}

func newConfigImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the configuration with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportBackup(args[0])
			if err != nil {
				return err
			}
			app.Config = backup.Config
			app.Logger.Info("config backup restored", "path", args[0], "created_at", backup.CreatedAt)
			return app.saveConfig()
		},
	}
}
