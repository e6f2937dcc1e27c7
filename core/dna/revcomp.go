// core/dna/revcomp.go
package dna

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
	for i := 'a'; i <= 'z'; i++ {
		complement[i] = complement[i-'a'+'A']
	}
}

// RevComp returns a new slice holding the reverse complement of seq.
// Unknown bytes complement to 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// RevCompInPlace reverse-complements seq in place.
func RevCompInPlace(seq []byte) {
	i, j := 0, len(seq)-1
	for i <= j {
		bi, bj := seq[i], seq[j]
		ci, cj := complement[bi], complement[bj]
		if ci == 0 {
			ci = 'N'
		}
		if cj == 0 {
			cj = 'N'
		}
		seq[i], seq[j] = cj, ci
		i++
		j--
	}
}

// Reverse reverses b in place. Used to keep per-base quality values aligned
// with a reverse-complemented sequence.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
