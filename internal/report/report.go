// internal/report/report.go
package report

import (
	"fmt"
	"io"

	"orientseq-core/orient"
	"orientseq/internal/jsonutil"
)

const rule = "========================================================"

// WriteText renders the end-of-stream summary as the classic three-block
// report.
func WriteText(w io.Writer, input string, s orient.Summary) error {
	_, err := fmt.Fprintf(w, `Stats for orienting %s:
%s

Forward reads count:           %d
Forward reads average length:  %.3f
Average polyA length:          %.3f
%s

Revcomp reads count:           %d
Revcomp reads average length:  %.3f
Average polyT length:          %.3f
%s

Ambiguous reads count:         %d
Ambiguous reads average length: %.3f
%s
`,
		input, rule,
		s.Forward.Count, s.Forward.AvgLen, s.Forward.AvgTail, rule,
		s.RevComp.Count, s.RevComp.AvgLen, s.RevComp.AvgTail, rule,
		s.Ambiguous.Count, s.Ambiguous.AvgLen, rule,
	)
	return err
}

type jsonReport struct {
	Input string         `json:"input"`
	Stats orient.Summary `json:"stats"`
}

// WriteJSON renders the summary as indented JSON.
func WriteJSON(w io.Writer, input string, s orient.Summary) error {
	return jsonutil.EncodePretty(w, jsonReport{Input: input, Stats: s})
}
