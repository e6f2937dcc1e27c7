// core/orient/classify.go
package orient

// Class is the orientation decision for one read.
type Class uint8

const (
	Forward Class = iota
	ReverseComplement
	Ambiguous
)

func (c Class) String() string {
	switch c {
	case Forward:
		return "forward"
	case ReverseComplement:
		return "revcomp"
	default:
		return "ambiguous"
	}
}

// Classify decides a read's orientation from its two tail-run lengths.
// diff = A - T; a difference smaller than threshold (in absolute value) is
// Ambiguous, a strictly longer T run means the read is reverse-complemented,
// anything else is already forward. threshold 0 makes every non-tied
// comparison decisive.
func Classify(r RunLengths, threshold int) Class {
	diff := r.A - r.T
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < threshold:
		return Ambiguous
	case diff < 0:
		return ReverseComplement
	default:
		return Forward
	}
}

// Tail returns the run length that acts as the tail for the given class:
// the poly-A run for Forward reads, the poly-T run for ReverseComplement
// reads, and 0 for Ambiguous reads.
func (r RunLengths) Tail(c Class) int {
	switch c {
	case Forward:
		return r.A
	case ReverseComplement:
		return r.T
	default:
		return 0
	}
}
