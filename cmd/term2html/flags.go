package main

import (
	"os"

	flag "github.com/spf13/pflag"

	term2html "github.com/alnah/go-term2html"
)

// commonFlags holds flags shared with config-file handling.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// compileFlags holds all flags for the compiler.
type compileFlags struct {
	common      commonFlags
	outDir      string
	title       string
	braille     bool
	tight       float64
	cellWidth   float64
	showVersion bool

	// Explicit-set markers: --tight and --cell-width select competing
	// spacing models, so defaults must be distinguishable from user input.
	tightSet     bool
	cellWidthSet bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// parseCompileFlags parses CLI flags and returns the positional args.
func parseCompileFlags(args []string) (*compileFlags, []string, error) {
	fs := flag.NewFlagSet("term2html", flag.ContinueOnError)
	f := &compileFlags{}

	fs.StringVar(&f.outDir, "out-dir", "", "output directory prefix for the destination")
	fs.StringVar(&f.title, "title", "", "custom title (single-file mode only)")
	fs.BoolVar(&f.braille, "braille", false, "swap spaces for U+2800 on lines containing Braille")
	fs.Float64Var(&f.tight, "tight", term2html.DefaultTightening, "extra horizontal tightening (em units)")
	fs.Float64Var(&f.cellWidth, "cell-width", term2html.DefaultCellWidth, "target cell width in em (selects cell-width spacing)")
	fs.BoolVar(&f.showVersion, "version", false, "show version information")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.tightSet = fs.Changed("tight")
	f.cellWidthSet = fs.Changed("cell-width")

	return f, fs.Args(), nil
}
