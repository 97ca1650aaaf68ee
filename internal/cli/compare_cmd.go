package cli

import (
	"fmt"

	"github.com/piwi3910/BarCut/internal/cli/formatter"
	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/spf13/cobra"
)

func newCompareCmd(app *App) *cobra.Command {
	var in cutListFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the cut list across stock presets and blade widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := in.settings(cmd, app.Config)
			if err != nil {
				return err
			}
			entries, err := in.entries(app)
			if err != nil {
				return err
			}

			scenarios := engine.BuildDefaultScenarios(settings, app.Config.StockPresets)
			app.Logger.Debug("comparing scenarios", "count", len(scenarios))

			results := engine.CompareScenarios(scenarios, entries)
			best := engine.BestScenario(results)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatComparison(results, best))
			return nil
		},
	}

	in.register(cmd)
	return cmd
}
