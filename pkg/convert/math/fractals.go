package math

import (
	"strings"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

// An lsystem is a context-free character rewriting grammar. Forward symbols
// (F, G, A, B) emit a forward digit; '+' and '-' emit enough 15-degree
// rotation digits to realize the fractal's turn angle.
type lsystem struct {
	axiom string
	rules map[rune]string
	angle int // turn angle in degrees
}

func (l lsystem) expand(iterations int) string {
	s := l.axiom
	for i := 0; i < iterations; i++ {
		var b strings.Builder
		b.Grow(len(s) * 4)
		for _, c := range s {
			if r, ok := l.rules[c]; ok {
				b.WriteString(r)
			} else {
				b.WriteRune(c)
			}
		}
		s = b.String()
	}
	return s
}

// encode scans the expanded string left to right and emits walk digits.
// Forward symbols emit 0, '+' emits n copies of 10, '-' emits n copies of
// 11 where n = max(1, angle/15). Everything else is ignored.
func (l lsystem) encode(s string) digit.Sequence {
	nRot := l.angle / 15
	if nRot < 1 {
		nRot = 1
	}

	out := make(digit.Sequence, 0, len(s))
	for _, c := range s {
		switch c {
		case 'F', 'G', 'A', 'B':
			out = append(out, 0)
		case '+':
			for i := 0; i < nRot; i++ {
				out = append(out, 10)
			}
		case '-':
			for i := 0; i < nRot; i++ {
				out = append(out, 11)
			}
		}
	}
	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}

func (l lsystem) digits(iterations int) digit.Sequence {
	return l.encode(l.expand(iterations))
}

// Dragon returns the Heighway dragon curve after the given iterations.
// Axiom F, rules F→F+G, G→F-G, 90-degree turns.
func Dragon(iterations int) digit.Sequence {
	return lsystem{
		axiom: "F",
		rules: map[rune]string{'F': "F+G", 'G': "F-G"},
		angle: 90,
	}.digits(iterations)
}

// Koch returns the Koch snowflake. Axiom F--F--F, rule F→F+F--F+F,
// 60-degree turns.
func Koch(iterations int) digit.Sequence {
	return lsystem{
		axiom: "F--F--F",
		rules: map[rune]string{'F': "F+F--F+F"},
		angle: 60,
	}.digits(iterations)
}

// SierpinskiArrowhead returns the Sierpinski arrowhead curve.
// Axiom F, rules F→G-F-G, G→F+G+F, 60-degree turns.
func SierpinskiArrowhead(iterations int) digit.Sequence {
	return lsystem{
		axiom: "F",
		rules: map[rune]string{'F': "G-F-G", 'G': "F+G+F"},
		angle: 60,
	}.digits(iterations)
}

// Hilbert returns the Hilbert space-filling curve.
// Axiom A, rules A→-BF+AFA+FB-, B→+AF-BFB-FA+, 90-degree turns.
func Hilbert(iterations int) digit.Sequence {
	return lsystem{
		axiom: "A",
		rules: map[rune]string{'A': "-BF+AFA+FB-", 'B': "+AF-BFB-FA+"},
		angle: 90,
	}.digits(iterations)
}

// Peano returns the Peano space-filling curve.
// Axiom F, rule F→F+F-F-F-F+F+F+F-F, 90-degree turns.
func Peano(iterations int) digit.Sequence {
	return lsystem{
		axiom: "F",
		rules: map[rune]string{'F': "F+F-F-F-F+F+F+F-F"},
		angle: 90,
	}.digits(iterations)
}

// Gosper returns the Gosper curve (flowsnake).
// Axiom A, rules A→A-B--B+A++AA+B-, B→+A-BB--B-A++A+B, 60-degree turns.
func Gosper(iterations int) digit.Sequence {
	return lsystem{
		axiom: "A",
		rules: map[rune]string{'A': "A-B--B+A++AA+B-", 'B': "+A-BB--B-A++A+B"},
		angle: 60,
	}.digits(iterations)
}
