package convert

import "github.com/sevenpixels/datawalk/pkg/digit"

// toBase4 reads A/C/G/T (either case) as base-4 symbols. Other characters
// (N, gaps, whitespace) contribute nothing and do not error.
func toBase4(sequence string) []uint8 {
	out := make([]uint8, 0, len(sequence))
	for _, c := range sequence {
		switch c {
		case 'A', 'a':
			out = append(out, 0)
		case 'C', 'c':
			out = append(out, 1)
		case 'G', 'g':
			out = append(out, 2)
		case 'T', 't':
			out = append(out, 3)
		}
	}
	return out
}

// DNA converts a nucleotide sequence to base-12 digits by repacking the
// base-4 symbol stream in 5-symbol chunks.
//
// A sequence with zero usable bases returns ErrConversionFailed: there is
// no signal to encode, and the source should be skipped.
func DNA(sequence string) (digit.Sequence, error) {
	base4 := toBase4(sequence)
	if len(base4) == 0 {
		return nil, failf("no usable bases in %d-character sequence", len(sequence))
	}
	return digit.Repack4To12(base4), nil
}

// DNABase4 converts a nucleotide sequence directly to base-4 digits for
// the lattice walk.
func DNABase4(sequence string) (digit.Sequence, error) {
	base4 := toBase4(sequence)
	if len(base4) == 0 {
		return nil, failf("no usable bases in %d-character sequence", len(sequence))
	}
	return digit.Sequence(base4), nil
}
