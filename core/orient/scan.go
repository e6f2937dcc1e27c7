// core/orient/scan.go
package orient

// RunLengths holds the longest tolerant homopolymer runs found by a scan:
// T over the first half of the sequence, A over the second half.
type RunLengths struct {
	T int
	A int
}

// ScanPolyRuns makes a single left-to-right pass over seq and returns the
// longest poly-T run seen in the first half and the longest poly-A run seen
// in the second half. The midpoint (len/2) is a neutral split: run state is
// reset there and the target base switches from 'T' to 'A'.
//
// maxMismatches is the number of non-target bases tolerated inside a run
// before it is forced closed. A tolerated mismatch extends the run but only
// a subsequent match can set a new best; a forced close credits the run's
// final length to the current target's bucket.
func ScanPolyRuns(seq []byte, maxMismatches int) RunLengths {
	var best RunLengths
	target := byte('T')
	bestFor := func(t byte) *int {
		if t == 'T' {
			return &best.T
		}
		return &best.A
	}

	run, mm := 0, 0
	half := len(seq) / 2
	for i, b := range seq {
		if i == half {
			run, mm = 0, 0
			target = 'A'
		}
		switch {
		case b == target:
			run++
			mm = 0
			if p := bestFor(target); run > *p {
				*p = run
			}
		case mm < maxMismatches:
			run++
			mm++
		default:
			if p := bestFor(target); run > *p {
				*p = run
			}
			run, mm = 0, 0
		}
	}
	return best
}
