// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "--input", "r.fq", "--output", "out.fq")
	if o.Threshold != 5 {
		t.Errorf("default threshold = %d, want 5", o.Threshold)
	}
	if o.PolyMismatch != 0 {
		t.Errorf("default poly-mismatches = %d, want 0", o.PolyMismatch)
	}
	if o.Stats != StatsText {
		t.Errorf("default stats = %q, want text", o.Stats)
	}
	if o.Format != "" || o.AmbiguousPath != "" {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestShorthands(t *testing.T) {
	o := mustParse(t, "-i", "r.fq", "-o", "out.fq", "-t", "3", "-f", "sam", "-a", "amb.fq")
	if o.Input != "r.fq" || o.Output != "out.fq" || o.Threshold != 3 || o.Format != "sam" || o.AmbiguousPath != "amb.fq" {
		t.Errorf("bad shorthand parse %+v", o)
	}
}

func TestErrorMissingInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "o.fq"}); err == nil {
		t.Fatalf("expected error when input missing")
	}
}

func TestErrorMissingOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--input", "r.fq"}); err == nil {
		t.Fatalf("expected error when output missing")
	}
}

func TestErrorNegativeThreshold(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--input", "r.fq", "--output", "o.fq", "--threshold", "-1"})
	if err == nil {
		t.Fatalf("expected error for negative threshold")
	}
}

func TestErrorNegativeMismatches(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--input", "r.fq", "--output", "o.fq", "--poly-mismatches", "-1"})
	if err == nil {
		t.Fatalf("expected error for negative tolerance")
	}
}

func TestErrorBadStats(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--input", "r.fq", "--output", "o.fq", "--stats", "xml"})
	if err == nil {
		t.Fatalf("expected error for bad stats mode")
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil {
		t.Fatalf("version parse err: %v", err)
	}
	if !o.Version {
		t.Fatalf("version flag not set")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	fs := newFS()
	fs.Usage = func() {}
	if _, err := ParseArgs(fs, []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}
