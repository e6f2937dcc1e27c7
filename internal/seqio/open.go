// internal/seqio/open.go
package seqio

import "errors"

// OpenReader opens path in the given format.
func OpenReader(path string, f Format) (Reader, error) {
	if f == FormatFastx {
		return OpenFastx(path)
	}
	return OpenAlign(path, f)
}

// NewWriter creates a sink for path in the given format. Alignment formats
// need the header of the reader the records come from, so src must be an
// *AlignReader for SAM/BAM output.
func NewWriter(path string, f Format, src Reader) (Writer, error) {
	if f == FormatFastx {
		return CreateFastx(path)
	}
	ar, ok := src.(*AlignReader)
	if !ok {
		return nil, errors.New("alignment output requires alignment input")
	}
	return CreateAlign(path, f, ar.Header())
}
