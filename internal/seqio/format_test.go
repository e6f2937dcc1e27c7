// internal/seqio/format_test.go
package seqio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	for path, want := range map[string]Format{
		"reads.fq":       FormatFastx,
		"reads.fastq":    FormatFastx,
		"reads.fa":       FormatFastx,
		"genome.fasta":   FormatFastx,
		"reads.fq.gz":    FormatFastx,
		"reads.FASTQ":    FormatFastx,
		"aln.sam":        FormatSAM,
		"aln.bam":        FormatBAM,
		"dir/x.y/r.fq":   FormatFastx,
		"dir.name/r.sam": FormatSAM,
	} {
		got, err := Detect(path)
		assert.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}

func TestDetectUnknown(t *testing.T) {
	for _, path := range []string{"reads.txt", "reads", "reads.gz", "reads.vcf"} {
		_, err := Detect(path)
		assert.Error(t, err, path)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"fq":    FormatFastx,
		"fastq": FormatFastx,
		"fa":    FormatFastx,
		"fasta": FormatFastx,
		"fx":    FormatFastx,
		"sam":   FormatSAM,
		"bam":   FormatBAM,
		"SAM":   FormatSAM,
	} {
		got, err := ParseFormat(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("vcf")
	assert.Error(t, err)
}
