package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/piwi3910/BarCut/internal/cli/formatter"
	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/export"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/spf13/cobra"
)

// exportPaths are the optional output files of a solve.
type exportPaths struct {
	pdf    string
	labels string
	xlsx   string
	dxf    string
}

func newSolveCmd(app *App) *cobra.Command {
	var in cutListFlags
	var out exportPaths
	var name string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Plan the cuts for a cut list",
		Example: `  barcut solve -p 1x4190:C7 -p 6x265:SP1
  barcut solve -f cutlist.xlsx --preset 12m --pdf plan.pdf --labels labels.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := in.settings(cmd, app.Config)
			if err != nil {
				return err
			}
			entries, err := in.entries(app)
			if err != nil {
				return err
			}

			start := time.Now()
			sol, rejected := engine.Run(name, settings, entries)
			for _, r := range rejected {
				app.Logger.Warn("entry rejected", "entry", r.Index+1, "label", r.Label, "length", r.Length, "err", r.Err)
			}
			if engine.HasPieceTooLong(rejected) {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatRejected(rejected))
				return fmt.Errorf("cut list has pieces longer than the %g mm stock", settings.StockLength)
			}
			app.Logger.Debug("solved", "bars", sol.Metrics.TotalBars, "patterns", len(sol.Patterns), "elapsed", time.Since(start))

			switch {
			case out.pdf == "-":
				// stdout carries the PDF
			case asJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(sol); err != nil {
					return fmt.Errorf("encoding solution: %w", err)
				}
			default:
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSolution(sol))
				if len(rejected) > 0 {
					fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatRejected(rejected))
				}
			}

			return app.writeExports(cmd.OutOrStdout(), sol, out)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name printed on reports")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the solution as JSON")
	cmd.Flags().StringVar(&out.pdf, "pdf", "", `Write the cutting report to this PDF, "-" for stdout`)
	cmd.Flags().StringVar(&out.labels, "labels", "", "Write QR piece labels to this PDF")
	cmd.Flags().StringVar(&out.xlsx, "xlsx", "", "Write the plan to this Excel workbook")
	cmd.Flags().StringVar(&out.dxf, "dxf", "", "Write the patterns to this DXF drawing")

	return cmd
}

// writeExports writes every requested output file and records them as recent
// exports. A PDF path of "-" streams the report to w instead.
func (app *App) writeExports(w io.Writer, sol model.Solution, out exportPaths) error {
	var written []string

	switch out.pdf {
	case "":
	case "-":
		if err := export.WritePDF(w, sol, app.reportOptions()); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
	default:
		if err := export.ExportPDF(out.pdf, sol, app.reportOptions()); err != nil {
			return fmt.Errorf("exporting PDF: %w", err)
		}
		written = append(written, out.pdf)
	}
	if out.labels != "" {
		if err := export.ExportLabels(out.labels, sol); err != nil {
			return fmt.Errorf("exporting labels: %w", err)
		}
		written = append(written, out.labels)
	}
	if out.xlsx != "" {
		if err := export.ExportExcel(out.xlsx, sol); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		written = append(written, out.xlsx)
	}
	if out.dxf != "" {
		if err := export.ExportDXF(out.dxf, sol); err != nil {
			return fmt.Errorf("exporting DXF: %w", err)
		}
		written = append(written, out.dxf)
	}

	if len(written) == 0 {
		return nil
	}
	for _, path := range written {
		app.Logger.Info("exported", "path", path)
		app.Config.AddRecentExport(path)
	}
	return app.saveConfig()
}

func (app *App) reportOptions() export.ReportOptions {
	opts := export.ReportOptions{Company: app.Config.CompanyName, Now: app.Now}
	if tz := app.Config.TimeZone; tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			app.Logger.Warn("unknown time zone, using local time", "time_zone", tz, "err", err)
		} else {
			opts.Location = loc
		}
	}
	return opts
}
