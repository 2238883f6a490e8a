package math

import (
	"math/bits"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

// FibonacciWord returns the first n digits of the infinite Fibonacci word
// over {0, 1} (0 -> 01, 1 -> 0).
func FibonacciWord(n int) digit.Sequence {
	if n <= 0 {
		return digit.Sequence{0}
	}
	s := digit.Sequence{0}
	for len(s) < n {
		next := make(digit.Sequence, 0, len(s)*2)
		for _, d := range s {
			if d == 0 {
				next = append(next, 0, 1)
			} else {
				next = append(next, 0)
			}
		}
		s = next
	}
	return s[:n]
}

// ThueMorse returns the first n digits of the Thue-Morse sequence: the
// parity of one-bits in the index.
func ThueMorse(n int) digit.Sequence {
	if n <= 0 {
		return digit.Sequence{0}
	}
	out := make(digit.Sequence, n)
	for i := range out {
		out[i] = uint8(bits.OnesCount(uint(i)) % 2)
	}
	return out
}

// LogisticMap iterates x <- r*x*(1-x) from x0 and quantizes each iterate
// in [0, 1] to a base-12 digit. Chaotic parameters (r near 4) produce
// aperiodic walks; periodic parameters collapse to short cycles.
func LogisticMap(r, x0 float64, n int) digit.Sequence {
	if n <= 0 {
		return digit.Sequence{0}
	}
	out := make(digit.Sequence, 0, n)
	x := x0
	for i := 0; i < n; i++ {
		x = r * x * (1 - x)
		d := uint8(x * 11.99)
		if d > 11 {
			d = 11
		}
		out = append(out, d)
	}
	return out
}
