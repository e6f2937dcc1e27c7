// internal/seqio/format.go
package seqio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the container format of a read file.
type Format int

const (
	FormatFastx Format = iota // FASTA or FASTQ, optionally gzipped
	FormatSAM
	FormatBAM
)

func (f Format) String() string {
	switch f {
	case FormatSAM:
		return "sam"
	case FormatBAM:
		return "bam"
	default:
		return "fastx"
	}
}

// Detect infers the format from the file extension. A trailing .gz is
// transparent for FASTA/FASTQ.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "gz" {
		inner := strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(inner), "."))
	}
	switch ext {
	case "fq", "fastq", "fa", "fasta":
		return FormatFastx, nil
	case "sam":
		return FormatSAM, nil
	case "bam":
		return FormatBAM, nil
	default:
		return FormatFastx, fmt.Errorf("can't parse .%s files", ext)
	}
}

// ParseFormat maps a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "fq", "fastq", "fa", "fasta", "fx":
		return FormatFastx, nil
	case "sam":
		return FormatSAM, nil
	case "bam":
		return FormatBAM, nil
	default:
		return FormatFastx, fmt.Errorf("invalid format %q (want fq, fa, sam or bam)", s)
	}
}
