package walk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

func TestWalkThreeForwardSteps(t *testing.T) {
	path := Walk(digit.Sequence{0, 0, 0}, Identity(), 1000)
	require.Len(t, path, 3)
	assert.Equal(t, Point{1, 0, 0}, path[0])
	assert.Equal(t, Point{2, 0, 0}, path[1])
	assert.Equal(t, Point{3, 0, 0}, path[2])
}

func TestWalkOnePointPerDigit(t *testing.T) {
	seq := make(digit.Sequence, 500)
	for i := range seq {
		seq[i] = uint8(i % 12)
	}
	path := Walk(seq, Identity(), 0)
	assert.Len(t, path, len(seq))
}

func TestWalkStepsAreUnitOrZero(t *testing.T) {
	seq := digit.Sequence{0, 2, 8, 4, 10, 1, 6, 3}
	path := Walk(seq, Identity(), 0)
	require.Len(t, path, len(seq))

	prev := Point{}
	for i, p := range path {
		dx := p[0] - prev[0]
		dy := p[1] - prev[1]
		dz := p[2] - prev[2]
		norm := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if seq[i] < 6 {
			assert.InDelta(t, 1.0, norm, 1e-9, "translation digit %d must move one unit", seq[i])
		} else {
			assert.InDelta(t, 0.0, norm, 1e-9, "rotation digit %d must not move", seq[i])
		}
		prev = p
	}
}

func TestWalkRotationChangesHeading(t *testing.T) {
	// Six +Z rotations (digit 10) make a 90-degree turn; forward then moves
	// along a different principal axis.
	seq := digit.Sequence{10, 10, 10, 10, 10, 10, 0}
	path := Walk(seq, Identity(), 0)
	last := path[len(path)-1]
	assert.InDelta(t, 0.0, last[0], 1e-9)
	assert.InDelta(t, 1.0, last[1], 1e-9)
	assert.InDelta(t, 0.0, last[2], 1e-9)
}

func TestWalkEmptySequence(t *testing.T) {
	path := Walk(nil, Identity(), 100)
	assert.Equal(t, []Point{{0, 0, 0}}, path)

	path4 := Walk4(nil, 100)
	assert.Equal(t, []Point{{0, 0, 0}}, path4)
}

func TestSubsampleKeepsLastPoint(t *testing.T) {
	seq := make(digit.Sequence, 997)
	for i := range seq {
		seq[i] = uint8(i % 6)
	}

	full := Walk(seq, Identity(), 0)
	sampled := Walk(seq, Identity(), 100)

	assert.LessOrEqual(t, len(sampled), 101)
	assert.Equal(t, full[len(full)-1], sampled[len(sampled)-1])
}

func TestWalk4Stacking(t *testing.T) {
	// +X, -X, +X revisits (1,0) and (0,0); the second visit to each cell
	// sits one unit up.
	path := Walk4(digit.Sequence{0, 1, 0}, 0)
	require.Len(t, path, 3)
	assert.Equal(t, Point{1, 0, 0}, path[0])
	assert.Equal(t, Point{0, 0, 0}, path[1])
	assert.Equal(t, Point{1, 0, 1}, path[2])
}

func TestWalk4ReducesDigitsMod4(t *testing.T) {
	a := Walk4(digit.Sequence{0, 1, 2, 3}, 0)
	b := Walk4(digit.Sequence{4, 5, 6, 7}, 0)
	assert.Equal(t, a, b)
}

func TestMappingDefensiveApply(t *testing.T) {
	// Entry 0 is out of range and must act as identity for digit 0.
	m := FromSlice([]uint8{200, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	path := Walk(digit.Sequence{0}, m, 0)
	assert.Equal(t, Point{1, 0, 0}, path[0])
}

func TestNamedMapping(t *testing.T) {
	assert.Equal(t, Identity(), Named("Identity"))
	assert.Equal(t, Identity(), Named("no-such-mapping"))
	assert.NotEqual(t, Identity(), Named("Spiral"))
}

func TestFromSliceShortTable(t *testing.T) {
	m := FromSlice([]uint8{5, 4})
	assert.Equal(t, Mapping{5, 4, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, m)
}
