// internal/seqio/record.go
package seqio

import (
	"github.com/biogo/hts/sam"

	"orientseq-core/dna"
)

// Record is one sequencing read in flight through the pipeline. Seq and Qual
// (when present) always have the same length. For alignment input, al keeps
// the underlying SAM record so flags and tags survive the rewrite.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte

	al *sam.Record
}

// ReverseComplement rewrites the record in the opposite orientation: the
// sequence is reverse-complemented and the quality values, if carried, are
// reversed in lock-step so they stay aligned per base.
func (r *Record) ReverseComplement() {
	dna.RevCompInPlace(r.Seq)
	dna.Reverse(r.Qual)
}

// Reader produces a lazy, finite, forward-only stream of records.
// Read returns io.EOF at end of stream; records are safe to retain.
type Reader interface {
	Read() (Record, error)
	Close() error
}

// Writer commits records to durable output in the order received.
// A write error is fatal to the stream; there is no retry.
type Writer interface {
	Write(Record) error
	Close() error
}
