// internal/writers/record.go
package writers

import (
	"orientseq-core/orient"
	"orientseq/internal/pipeline"
	"orientseq/internal/seqio"
)

// StartRecordWriter spins up the sink goroutine for oriented records.
// Records arrive in stream order and are committed in that order. When an
// ambiguous sink is configured, Ambiguous records are routed there instead
// of the main sink. The first write error is kept and the channel drained so
// senders never block; the error is delivered on the returned channel after
// the input channel closes.
func StartRecordWriter(main, ambiguous seqio.Writer, bufSize int) (chan<- pipeline.Oriented, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Oriented, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for o := range in {
			if err != nil {
				continue
			}
			w := main
			if o.Class == orient.Ambiguous && ambiguous != nil {
				w = ambiguous
			}
			err = w.Write(o.Rec)
		}
		errCh <- err
	}()

	return in, errCh
}
