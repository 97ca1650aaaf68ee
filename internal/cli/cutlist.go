package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/importer"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/spf13/cobra"
)

// cutListFlags are the input and settings flags shared by solve and compare.
type cutListFlags struct {
	files     []string
	pieces    []string
	preset    string
	length    float64
	kerf      float64
	minOffcut float64
	price     float64
}

func (f *cutListFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "CSV or Excel cut list (repeatable)")
	cmd.Flags().StringArrayVarP(&f.pieces, "piece", "p", nil, `Piece as QTYxLENGTH[:LABEL], e.g. "6x265:SP1" (repeatable)`)
	cmd.Flags().StringVar(&f.preset, "preset", "", "Stock preset from the configuration")
	cmd.Flags().Float64Var(&f.length, "length", 0, "Stock bar length in mm")
	cmd.Flags().Float64Var(&f.kerf, "kerf", 0, "Saw blade kerf in mm")
	cmd.Flags().Float64Var(&f.minOffcut, "min-offcut", 0, "Shortest remnant worth keeping in mm, 0 keeps none")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Price per stock bar for cost estimates")
}

// settings layers the configured defaults, the chosen preset and explicit flags.
func (f *cutListFlags) settings(cmd *cobra.Command, cfg model.AppConfig) (model.Settings, error) {
	var s model.Settings
	cfg.ApplyToSettings(&s)

	if f.preset != "" {
		p, ok := cfg.Preset(f.preset)
		if !ok {
			return s, fmt.Errorf("unknown stock preset %q", f.preset)
		}
		s.StockLength = p.Length
		if p.Kerf > 0 {
			s.Kerf = p.Kerf
		}
	}

	if cmd.Flags().Changed("length") {
		s.StockLength = f.length
	}
	if cmd.Flags().Changed("kerf") {
		s.Kerf = f.kerf
	}
	if cmd.Flags().Changed("min-offcut") {
		s.MinOffcutLength = f.minOffcut
	}
	if cmd.Flags().Changed("price") {
		s.PricePerBar = f.price
	}
	if err := engine.ValidateSettings(s); err != nil {
		return s, err
	}
	return s, nil
}

// entries collects the cut list from files first, then --piece flags, in order.
func (f *cutListFlags) entries(app *App) ([]model.Requirement, error) {
	var entries []model.Requirement

	for _, path := range f.files {
		res := importer.ImportFile(path)
		for _, w := range res.Warnings {
			app.Logger.Warn("import warning", "file", path, "msg", w)
		}
		for _, e := range res.Errors {
			app.Logger.Warn("import error", "file", path, "msg", e)
		}
		if len(res.Requirements) == 0 && len(res.Errors) > 0 {
			return nil, fmt.Errorf("importing %s: %s", path, res.Errors[0])
		}
		app.Logger.Info("imported cut list", "file", path, "entries", len(res.Requirements))
		entries = append(entries, res.Requirements...)
	}

	for _, arg := range f.pieces {
		r, err := parsePiece(arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, r)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no cut list given: use --file or --piece")
	}
	return entries, nil
}

// parsePiece reads "QTYxLENGTH[:LABEL]" or "LENGTH[:LABEL]". A decimal comma
// is accepted in the length. Values are checked later by the engine.
func parsePiece(arg string) (model.Requirement, error) {
	body, label, _ := strings.Cut(arg, ":")
	body = strings.TrimSpace(body)
	label = strings.TrimSpace(label)

	qty := 1
	lengthText := body
	if q, l, ok := strings.Cut(strings.ToLower(body), "x"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return model.Requirement{}, fmt.Errorf("piece %q: invalid quantity %q", arg, q)
		}
		qty = n
		lengthText = l
	}

	length, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(lengthText), ",", "."), 64)
	if err != nil {
		return model.Requirement{}, fmt.Errorf("piece %q: invalid length %q", arg, lengthText)
	}
	return model.NewRequirement(qty, length, label), nil
}
