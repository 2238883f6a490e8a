// Package walk implements the turtle walk engine that turns digit sequences
// into 3-D point paths.
//
// The base-12 walk drives a turtle with a quaternion-tracked orientation:
// digits 0-5 translate one unit along a local axis (+X, -X, +Y, -Y, +Z, -Z)
// rotated into world space, digits 6-11 rotate the orientation by 15 degrees
// around a world axis. The base-4 walk is a 2-D lattice walk where revisited
// cells stack upward along Z.
//
// All walks are pure functions over their inputs and safe for concurrent use.
package walk

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

// Point is a 3-D position in world space.
type Point [3]float64

// stepAngle is the fixed rotation step (15 degrees). A 90-degree L-system
// turn therefore spends six rotation digits.
const stepAngle = math.Pi / 12

// localDirs are the six unit translation directions in the turtle's local
// frame, indexed by mapped digits 0-5.
var localDirs = [6][3]float64{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// rotAxes are the world rotation axes for mapped digits 6-11. Even offsets
// rotate positive, odd offsets negative, about the same axis.
var rotAxes = [6][3]float64{
	{1, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0, 0, 1},
}

// Walk runs a base-12 digit sequence through the turtle and returns one
// point per digit. Rotation digits leave the position unchanged, so the
// path repeats the current point for them.
//
// maxPoints bounds the returned path via subsampling; values <= 0 disable
// the bound. The final point of the full path is never dropped.
// An empty sequence yields a single point at the origin.
func Walk(seq digit.Sequence, m Mapping, maxPoints int) []Point {
	if len(seq) == 0 {
		return []Point{{0, 0, 0}}
	}

	path := make([]Point, 0, len(seq))
	var pos Point
	rot := quat.Number{Real: 1} // identity orientation

	for _, raw := range seq {
		d := m.apply(raw)
		if d < 6 {
			dir := rotate(rot, localDirs[d])
			pos[0] += dir[0]
			pos[1] += dir[1]
			pos[2] += dir[2]
		} else {
			axis := rotAxes[d-6]
			angle := stepAngle
			if (d-6)%2 == 1 {
				angle = -stepAngle
			}
			rot = quat.Mul(axisAngle(axis, angle), rot)
		}
		path = append(path, pos)
	}

	return subsample(path, maxPoints)
}

// Walk4 runs a base-4 digit sequence over the integer 2-D lattice.
// Digits select one of the four cardinal directions (+X, -X, +Y, -Y); a
// revisited cell stacks upward, with the point's Z coordinate equal to the
// number of prior visits. The revisit map lives only for the duration of
// the call.
func Walk4(seq digit.Sequence, maxPoints int) []Point {
	if len(seq) == 0 {
		return []Point{{0, 0, 0}}
	}

	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	path := make([]Point, 0, len(seq))
	x, y := 0, 0
	visits := make(map[[2]int]int)

	for _, raw := range seq {
		d := raw % 4
		x += dirs[d][0]
		y += dirs[d][1]

		visits[[2]int{x, y}]++
		z := float64(visits[[2]int{x, y}] - 1)

		path = append(path, Point{float64(x), float64(y), z})
	}

	return subsample(path, maxPoints)
}

// subsample reduces a path to at most maxPoints entries by taking every
// ceil(len/maxPoints)-th point. The last point of the full path is always
// retained so the path's end is never lost.
func subsample(path []Point, maxPoints int) []Point {
	if maxPoints <= 0 || len(path) <= maxPoints {
		return path
	}

	step := (len(path) + maxPoints - 1) / maxPoints
	out := make([]Point, 0, maxPoints+1)
	for i := 0; i < len(path); i += step {
		out = append(out, path[i])
	}
	if out[len(out)-1] != path[len(path)-1] {
		out = append(out, path[len(path)-1])
	}
	return out
}

// axisAngle builds the unit quaternion rotating by angle around axis.
func axisAngle(axis [3]float64, angle float64) quat.Number {
	s := math.Sin(angle / 2)
	return quat.Number{
		Real: math.Cos(angle / 2),
		Imag: axis[0] * s,
		Jmag: axis[1] * s,
		Kmag: axis[2] * s,
	}
}

// rotate applies q to v via the sandwich product q v q*.
func rotate(q quat.Number, v [3]float64) [3]float64 {
	p := quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return [3]float64{r.Imag, r.Jmag, r.Kmag}
}
