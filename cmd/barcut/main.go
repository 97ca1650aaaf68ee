// BarCut plans the cuts of linear stock (tube, angle, profile, timber)
// from commercial-length bars.
//
// Build:
//
//	go build -o barcut ./cmd/barcut
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/piwi3910/BarCut/internal/cli"
	"github.com/piwi3910/BarCut/internal/cli/formatter"
	"github.com/piwi3910/BarCut/internal/project"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	formatter.SetPlain(!isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != "")

	app := cli.NewApp(project.DefaultConfigPath(), os.Stderr)
	return cli.NewRootCmd(app).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
