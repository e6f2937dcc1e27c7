// core/orient/stats.go
package orient

// SmoothingDenom keeps per-class averages finite when a class saw no reads.
const SmoothingDenom = 0.001

// Stats accumulates per-class counts and cumulative lengths over a stream of
// reads. It has exactly one writer at a time; Add must be called once per
// read, after classification.
type Stats struct {
	ForwardCount   int
	ForwardBases   int
	RevCompCount   int
	RevCompBases   int
	AmbiguousCount int
	AmbiguousBases int
	PolyABases     int // total poly-A tail length over Forward reads
	PolyTBases     int // total poly-T tail length over ReverseComplement reads
}

// Add records one classified read of the given sequence length. tail is the
// class-relevant tail-run length (ignored for Ambiguous).
func (s *Stats) Add(c Class, seqLen, tail int) {
	switch c {
	case Forward:
		s.ForwardCount++
		s.ForwardBases += seqLen
		s.PolyABases += tail
	case ReverseComplement:
		s.RevCompCount++
		s.RevCompBases += seqLen
		s.PolyTBases += tail
	default:
		s.AmbiguousCount++
		s.AmbiguousBases += seqLen
	}
}

// Total returns the number of reads accumulated so far.
func (s *Stats) Total() int {
	return s.ForwardCount + s.RevCompCount + s.AmbiguousCount
}

// ClassSummary is the read-only report for one class.
type ClassSummary struct {
	Count   int     `json:"count"`
	AvgLen  float64 `json:"avg_length"`
	AvgTail float64 `json:"avg_tail,omitempty"`
}

// Summary is the end-of-stream snapshot of Stats.
type Summary struct {
	Forward   ClassSummary `json:"forward"`
	RevComp   ClassSummary `json:"revcomp"`
	Ambiguous ClassSummary `json:"ambiguous"`
}

func smooth(sum, count int) float64 {
	return float64(sum) / (float64(count) + SmoothingDenom)
}

// Summary computes the averaged snapshot. Averages divide by
// count+SmoothingDenom so an empty class reports a near-zero average
// instead of NaN.
func (s *Stats) Summary() Summary {
	return Summary{
		Forward: ClassSummary{
			Count:   s.ForwardCount,
			AvgLen:  smooth(s.ForwardBases, s.ForwardCount),
			AvgTail: smooth(s.PolyABases, s.ForwardCount),
		},
		RevComp: ClassSummary{
			Count:   s.RevCompCount,
			AvgLen:  smooth(s.RevCompBases, s.RevCompCount),
			AvgTail: smooth(s.PolyTBases, s.RevCompCount),
		},
		Ambiguous: ClassSummary{
			Count:  s.AmbiguousCount,
			AvgLen: smooth(s.AmbiguousBases, s.AmbiguousCount),
		},
	}
}
