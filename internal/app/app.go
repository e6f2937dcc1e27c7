// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"orientseq/internal/cli"
	"orientseq/internal/cmdutil"
	"orientseq/internal/pipeline"
	"orientseq/internal/report"
	"orientseq/internal/seqio"
	"orientseq/internal/version"
	"orientseq/internal/writers"
)

// RunContext parses argv, streams the input through the orientation pipeline
// into the output sink(s), and renders the stats report. It returns the
// process exit code: 0 ok, 2 usage/config error, 3 I/O error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("orientseq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "orientseq version %s\n", version.Version)
		return 0
	}

	// Resolve the container format before touching the stream.
	var format seqio.Format
	if opts.Format != "" {
		format, err = seqio.ParseFormat(opts.Format)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if det, derr := seqio.Detect(opts.Input); derr == nil && det != format {
			cmdutil.Warnf(stderr, opts.Quiet, "--format %s overrides %s detected from %s", format, det, opts.Input)
		}
	} else {
		format, err = seqio.Detect(opts.Input)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	src, err := seqio.OpenReader(opts.Input, format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = src.Close() }()

	sink, err := seqio.NewWriter(opts.Output, format, src)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	var ambiguous seqio.Writer
	if opts.AmbiguousPath != "" {
		ambiguous, err = seqio.NewWriter(opts.AmbiguousPath, format, src)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.StartRecordWriter(sink, ambiguous, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stats, perr := pipeline.ForEachRecord(
		ctx,
		pipeline.Config{Threads: thr, Threshold: opts.Threshold, MaxMismatches: opts.PolyMismatch},
		src,
		func(o pipeline.Oriented) error {
			select {
			case inCh <- o:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	werr := <-writeErr

	if cerr := sink.Close(); werr == nil {
		werr = cerr
	}
	if ambiguous != nil {
		if cerr := ambiguous.Close(); werr == nil {
			werr = cerr
		}
	}

	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if !opts.Quiet {
		var rerr error
		switch opts.Stats {
		case cli.StatsJSON:
			rerr = report.WriteJSON(stderr, opts.Input, stats.Summary())
		case cli.StatsText:
			rerr = report.WriteText(stderr, opts.Input, stats.Summary())
		}
		if rerr != nil && !writers.IsBrokenPipe(rerr) {
			return 3
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
