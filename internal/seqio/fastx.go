// internal/seqio/fastx.go
package seqio

import (
	"fmt"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

func init() {
	// Reads may carry N and IUPAC codes; leave validation to downstream.
	seq.ValidateSeq = false
}

// FastxReader streams FASTA/FASTQ records, gzip-transparent, "-" = stdin.
type FastxReader struct {
	r *fastx.Reader
}

func OpenFastx(path string) (*FastxReader, error) {
	r, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &FastxReader{r: r}, nil
}

func (r *FastxReader) Read() (Record, error) {
	rec, err := r.r.Read()
	if err != nil {
		return Record{}, err
	}
	// The fastx record is pooled and reused between calls; copy out what we
	// keep. Qual is decided by the reader's format flag, not by the record:
	// the pool does not clear stale quality bytes on the FASTA path.
	out := Record{
		ID:  string(rec.Name),
		Seq: append([]byte(nil), rec.Seq.Seq...),
	}
	if r.r.IsFastq {
		out.Qual = append([]byte(nil), rec.Seq.Qual...)
	}
	return out, nil
}

func (r *FastxReader) Close() error {
	r.r.Close()
	return nil
}

// FastxWriter writes records as 4-line FASTQ when qualities are present and
// as FASTA otherwise. "-" writes to stdout; a .gz path compresses.
type FastxWriter struct {
	fh *xopen.Writer
}

func CreateFastx(path string) (*FastxWriter, error) {
	fh, err := xopen.Wopen(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &FastxWriter{fh: fh}, nil
}

func (w *FastxWriter) Write(rec Record) error {
	var err error
	if rec.Qual != nil {
		_, err = fmt.Fprintf(w.fh, "@%s\n%s\n+\n%s\n", rec.ID, rec.Seq, rec.Qual)
	} else {
		_, err = fmt.Fprintf(w.fh, ">%s\n%s\n", rec.ID, rec.Seq)
	}
	return err
}

func (w *FastxWriter) Close() error {
	return w.fh.Close()
}
