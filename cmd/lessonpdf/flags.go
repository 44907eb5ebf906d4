package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags selects the volume to build.
type inputFlags struct {
	volume  string // embedded volume name
	catalog string // YAML catalog path
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size   string
	margin float64
}

// fetchFlags holds illustration download flags.
type fetchFlags struct {
	offline bool
	workers int
	timeout string
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	input      inputFlags
	output     string
	timeout    string
	css        string
	page       pageFlags
	fetch      fetchFlags
	outputMode outputFlags
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVar(&f.volume, "volume", "", "embedded volume name (see 'lessonpdf list')")
	fs.StringVar(&f.catalog, "catalog", "", "YAML catalog file")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in centimeters (0.5-5.0)")
}

func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.BoolVar(&f.offline, "offline", false, "build without downloading illustrations")
	fs.IntVar(&f.workers, "fetch-workers", 0, "concurrent illustration downloads (1-16)")
	fs.StringVar(&f.timeout, "fetch-timeout", "", "per-illustration timeout (e.g., 20s)")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// newBuildFlagSet registers every build flag on a fresh FlagSet.
func newBuildFlagSet(f *buildFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file or directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 60s, 2m)")
	fs.StringVar(&f.css, "css", "", "extra CSS file applied after the built-in styles")

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addPageFlags(fs, &f.page)
	addFetchFlags(fs, &f.fetch)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printBuildUsage(stderr) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
// Parse errors wrap ErrUsage; --help returns flag.ErrHelp.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f, stderr)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return f, fs.Args(), nil
}
