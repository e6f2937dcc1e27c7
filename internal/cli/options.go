// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"orientseq/internal/version"
)

// Stats output modes.
const (
	StatsText = "text"
	StatsJSON = "json"
	StatsNone = "none"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input  string
	Output string
	Format string // "" = detect from the input extension

	Threshold     int // ambiguity threshold on the polyA-polyT difference
	PolyMismatch  int // scanner run tolerance
	AmbiguousPath string

	Threads int

	Stats string
	Quiet bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: orient sequencing reads by their poly-A/poly-T tails

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "i", "", "input file to orient (shorthand) [*]")
	fs.StringVar(&opt.Input, "input", "", "input file to orient [*]")
	fs.StringVar(&opt.Output, "o", "", "output file to write (shorthand) [*]")
	fs.StringVar(&opt.Output, "output", "", "output file to write [*]")
	fs.StringVar(&opt.Format, "f", "", "file format: fq | fa | sam | bam (shorthand)")
	fs.StringVar(&opt.Format, "format", "", "file format: fq | fa | sam | bam (default: input file extension)")

	fs.IntVar(&opt.Threshold, "t", 5, "ambiguity threshold (shorthand) [5]")
	fs.IntVar(&opt.Threshold, "threshold", 5, "maximum polyA/polyT difference still counted as ambiguous [5]")
	fs.IntVar(&opt.PolyMismatch, "poly-mismatches", 0, "mismatches tolerated inside a homopolymer run [0]")
	fs.StringVar(&opt.AmbiguousPath, "a", "", "output file for ambiguous reads (shorthand)")
	fs.StringVar(&opt.AmbiguousPath, "ambiguous", "", "output file for ambiguous reads (default: kept in main output)")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.StringVar(&opt.Stats, "stats", StatsText, "stats report: text | json | none [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress stats report and warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Output == "" {
		return opt, errors.New("--output is required")
	}
	if opt.Threshold < 0 {
		return opt, errors.New("--threshold must be ≥ 0")
	}
	if opt.PolyMismatch < 0 {
		return opt, errors.New("--poly-mismatches must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Stats {
	case StatsText, StatsJSON, StatsNone:
	default:
		return opt, fmt.Errorf("invalid --stats %q", opt.Stats)
	}
	return opt, nil
}
