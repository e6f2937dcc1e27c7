// internal/seqio/hts.go
package seqio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

type samRecordReader interface {
	Read() (*sam.Record, error)
	Header() *sam.Header
}

// AlignReader streams SAM or BAM records. The original alignment record is
// kept on each Record so flags and tags are preserved on rewrite.
type AlignReader struct {
	r samRecordReader
	c []io.Closer
}

func OpenAlign(path string, f Format) (*AlignReader, error) {
	var in io.Reader = os.Stdin
	var closers []io.Closer
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		in = fh
		closers = append(closers, fh)
	}
	switch f {
	case FormatSAM:
		r, err := sam.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return &AlignReader{r: r, c: closers}, nil
	case FormatBAM:
		r, err := bam.NewReader(in, 1)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return &AlignReader{r: r, c: append([]io.Closer{r}, closers...)}, nil
	default:
		return nil, fmt.Errorf("not an alignment format: %v", f)
	}
}

func (r *AlignReader) Header() *sam.Header { return r.r.Header() }

func (r *AlignReader) Read() (Record, error) {
	rec, err := r.r.Read()
	if err != nil {
		return Record{}, err
	}
	out := Record{
		ID:  rec.Name,
		Seq: rec.Seq.Expand(),
		al:  rec,
	}
	if len(rec.Qual) > 0 {
		out.Qual = append([]byte(nil), rec.Qual...)
	}
	return out, nil
}

func (r *AlignReader) Close() error {
	var err error
	for _, c := range r.c {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type samRecordWriter interface {
	Write(*sam.Record) error
}

// AlignWriter writes SAM or BAM records under the header taken from the
// input file.
type AlignWriter struct {
	w samRecordWriter
	c []io.Closer
}

func CreateAlign(path string, f Format, h *sam.Header) (*AlignWriter, error) {
	var out io.Writer = os.Stdout
	var closers []io.Closer
	if path != "-" {
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		out = fh
		closers = append(closers, fh)
	}
	switch f {
	case FormatSAM:
		w, err := sam.NewWriter(out, h, sam.FlagDecimal)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		return &AlignWriter{w: w, c: closers}, nil
	case FormatBAM:
		w, err := bam.NewWriter(out, h, 1)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		return &AlignWriter{w: w, c: append([]io.Closer{w}, closers...)}, nil
	default:
		return nil, fmt.Errorf("not an alignment format: %v", f)
	}
}

func (w *AlignWriter) Write(rec Record) error {
	if rec.al == nil {
		return errors.New("alignment output requires alignment input")
	}
	// Fold the (possibly reoriented) bases and qualities back into the
	// original record; everything else rides along untouched.
	rec.al.Seq = sam.NewSeq(rec.Seq)
	if rec.Qual != nil {
		rec.al.Qual = rec.Qual
	}
	return w.w.Write(rec.al)
}

func (w *AlignWriter) Close() error {
	var err error
	for _, c := range w.c {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
