package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output-related flags.
type outputFlags struct {
	name string // output file name (sanitized before writing)
	html bool   // write an HTML preview alongside the RTF
}

// fontFlags holds RTF font table flags.
type fontFlags struct {
	serif string
	mono  string
}

// cliFlags holds all flags for the md2rtf command.
type cliFlags struct {
	common     commonFlags
	output     outputFlags
	fonts      fontFlags
	workers    int
	noOptimize bool
	version    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.name, "output", "o", "", "output file name (default combined.rtf)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview of the combined document")
}

// addFontFlags adds font flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.StringVar(&f.serif, "serif-font", "", "body font for slot 0 (default Times New Roman)")
	fs.StringVar(&f.mono, "mono-font", "", "code font for slot 1 (default Courier New)")
}

// parseFlags parses command line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2rtf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel render workers (0 = auto)")
	fs.BoolVar(&f.noOptimize, "no-optimize", false, "disable deduplication, normalization, and RTF optimization")
	fs.BoolVarP(&f.version, "version", "V", false, "show version information")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addFontFlags(fs, &f.fonts)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
