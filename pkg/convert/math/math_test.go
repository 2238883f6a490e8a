package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

func TestConstantLeadingDigits(t *testing.T) {
	assert.Equal(t, uint8(3), Pi(10)[0])
	assert.Equal(t, uint8(2), E(10)[0])
	assert.Equal(t, uint8(1), Sqrt2(10)[0])
	assert.Equal(t, uint8(1), Phi(10)[0])
	assert.Equal(t, uint8(0), Ln2(10)[0])
}

func TestConstantExactLength(t *testing.T) {
	for _, n := range []int{1, 50, 100, 101, 1000} {
		got := Pi(n)
		require.Len(t, got, n, "Pi(%d)", n)
		assert.True(t, got.Valid(digit.Base12))
	}
}

func TestConstantExtensionDeterministic(t *testing.T) {
	a := E(500)
	b := E(500)
	assert.Equal(t, a, b)

	// The extension must leave the authoritative prefix untouched.
	assert.Equal(t, E(100), a[:100])
}

func TestDragonGrowth(t *testing.T) {
	d1 := Dragon(1)
	d2 := Dragon(2)
	assert.Greater(t, len(d2), len(d1))
	assert.True(t, d2.Valid(digit.Base12))
}

func TestKochStartsForward(t *testing.T) {
	koch := Koch(1)
	assert.Equal(t, uint8(0), koch[0])
	assert.True(t, koch.Valid(digit.Base12))
}

func TestFractalTurnExpansion(t *testing.T) {
	// Dragon iteration 1 is "F+G": forward, six +Z rotations (90/15),
	// forward.
	got := Dragon(1)
	want := digit.Sequence{0, 10, 10, 10, 10, 10, 10, 0}
	assert.Equal(t, want, got)
}

func TestAllFractalsValid(t *testing.T) {
	for name, seq := range map[string]digit.Sequence{
		"dragon":     Dragon(8),
		"koch":       Koch(3),
		"sierpinski": SierpinskiArrowhead(5),
		"hilbert":    Hilbert(3),
		"peano":      Peano(2),
		"gosper":     Gosper(3),
	} {
		assert.NotEmpty(t, seq, name)
		assert.True(t, seq.Valid(digit.Base12), name)
	}
}

func TestMandelbrotInteriorPoint(t *testing.T) {
	orbit := MandelbrotOrbit(-0.5, 0, 1000)
	assert.GreaterOrEqual(t, len(orbit), 100, "interior point should not escape")
	assert.True(t, orbit.Valid(digit.Base12))
}

func TestMandelbrotEscapingPoint(t *testing.T) {
	orbit := MandelbrotOrbit(2, 0, 1000)
	assert.Less(t, len(orbit), 10, "c=2 escapes almost immediately")
	assert.NotEmpty(t, orbit)
}

func TestJuliaOrbit(t *testing.T) {
	orbit := JuliaOrbit(-0.123, 0.745, 0.1, 0.1, 500)
	assert.NotEmpty(t, orbit)
	assert.True(t, orbit.Valid(digit.Base12))
}

func TestSequences(t *testing.T) {
	fib := FibonacciWord(20)
	require.Len(t, fib, 20)
	assert.Equal(t, digit.Sequence{0, 1, 0, 0, 1}, fib[:5])

	tm := ThueMorse(8)
	assert.Equal(t, digit.Sequence{0, 1, 1, 0, 1, 0, 0, 1}, tm)

	lm := LogisticMap(3.99, 0.5, 100)
	require.Len(t, lm, 100)
	assert.True(t, lm.Valid(digit.Base12))
}

func TestParseKnownKeys(t *testing.T) {
	for _, key := range Keys() {
		g, ok := Parse(key)
		require.True(t, ok, "key %q must parse", key)
		seq := g.Generate(200)
		assert.NotEmpty(t, seq, key)
		assert.True(t, seq.Valid(digit.Base12), key)
	}
}

func TestParseUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "math", "math.constant.tau", "dna", "math.fractal.mandelbrot"} {
		_, ok := Parse(key)
		assert.False(t, ok, "key %q must not parse", key)
	}
}
