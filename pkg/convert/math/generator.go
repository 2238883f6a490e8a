package math

import (
	"strings"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

// Fractal iteration counts are fixed per curve to bound output size; the
// rewrite growth rates differ wildly between grammars.
const (
	dragonIterations     = 14
	kochIterations       = 5
	sierpinskiIterations = 9
	hilbertIterations    = 6
	peanoIterations      = 4
	gosperIterations     = 5
)

// Generator produces a base-12 sequence for one math construct. For
// constants and symbolic sequences n is the exact output length; for
// fractals the length is fixed by the iteration count; for orbits n bounds
// the iteration count and escape may cut the output short.
type Generator struct {
	key string
	gen func(n int) digit.Sequence
}

// Key returns the converter key this generator was parsed from.
func (g Generator) Key() string { return g.key }

// Generate produces the digit sequence.
func (g Generator) Generate(n int) digit.Sequence { return g.gen(n) }

// Parse resolves a converter key such as "math.constant.pi",
// "math.fractal.dragon", "math.mandelbrot.spiral" or "math.julia.rabbit"
// into a Generator. The second return is false for unknown keys.
func Parse(key string) (Generator, bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != "math" {
		return Generator{}, false
	}

	var gen func(n int) digit.Sequence
	switch parts[1] {
	case "constant":
		switch parts[2] {
		case "pi":
			gen = Pi
		case "e":
			gen = E
		case "sqrt2":
			gen = Sqrt2
		case "phi":
			gen = Phi
		case "ln2":
			gen = Ln2
		}

	case "fractal":
		fixed := func(f func(int) digit.Sequence, iters int) func(int) digit.Sequence {
			return func(int) digit.Sequence { return f(iters) }
		}
		switch parts[2] {
		case "dragon":
			gen = fixed(Dragon, dragonIterations)
		case "koch":
			gen = fixed(Koch, kochIterations)
		case "sierpinski":
			gen = fixed(SierpinskiArrowhead, sierpinskiIterations)
		case "hilbert":
			gen = fixed(Hilbert, hilbertIterations)
		case "peano":
			gen = fixed(Peano, peanoIterations)
		case "gosper":
			gen = fixed(Gosper, gosperIterations)
		}

	case "sequence":
		switch parts[2] {
		case "fibonacci":
			gen = FibonacciWord
		case "thue_morse":
			gen = ThueMorse
		case "logistic", "logistic_chaos":
			gen = func(n int) digit.Sequence { return LogisticMap(3.99, 0.5, n) }
		case "logistic_periodic":
			gen = func(n int) digit.Sequence { return LogisticMap(3.5, 0.5, n) }
		case "logistic_period3":
			gen = func(n int) digit.Sequence { return LogisticMap(3.8284, 0.5, n) }
		}

	case "mandelbrot":
		if p, ok := findPoint(MandelbrotPoints, parts[2]); ok {
			gen = func(n int) digit.Sequence { return MandelbrotOrbit(p.CRe, p.CIm, n) }
		}

	case "julia":
		if p, ok := findPoint(JuliaPoints, parts[2]); ok {
			gen = func(n int) digit.Sequence { return JuliaOrbit(p.CRe, p.CIm, p.Z0Re, p.Z0Im, n) }
		}
	}

	if gen == nil {
		return Generator{}, false
	}
	return Generator{key: key, gen: gen}, true
}

func findPoint(points []OrbitPoint, name string) (OrbitPoint, bool) {
	for _, p := range points {
		if p.Name == name {
			return p, true
		}
	}
	return OrbitPoint{}, false
}

// Keys lists every converter key Parse accepts, for manifest validation
// and CLI listings.
func Keys() []string {
	keys := []string{
		"math.constant.pi", "math.constant.e", "math.constant.sqrt2",
		"math.constant.phi", "math.constant.ln2",
		"math.fractal.dragon", "math.fractal.koch", "math.fractal.sierpinski",
		"math.fractal.hilbert", "math.fractal.peano", "math.fractal.gosper",
		"math.sequence.fibonacci", "math.sequence.thue_morse",
		"math.sequence.logistic", "math.sequence.logistic_periodic",
		"math.sequence.logistic_period3",
	}
	for _, p := range MandelbrotPoints {
		keys = append(keys, "math.mandelbrot."+p.Name)
	}
	for _, p := range JuliaPoints {
		keys = append(keys, "math.julia."+p.Name)
	}
	return keys
}
