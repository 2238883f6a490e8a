package math

import (
	stdmath "math"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

// escapeRadiusSq is the squared magnitude beyond which an orbit is
// considered escaped.
const escapeRadiusSq = 1e12

// MandelbrotOrbit iterates z <- z^2 + c from z = 0 and encodes each
// retained iterate's angle as a base-12 digit. Iteration stops at maxIter
// or when the orbit escapes, so the output length is data-dependent.
// An orbit with no retained iterates falls back to the single digit 0.
func MandelbrotOrbit(cRe, cIm float64, maxIter int) digit.Sequence {
	return orbit(0, 0, cRe, cIm, maxIter)
}

// JuliaOrbit iterates z <- z^2 + c from a supplied starting point z0.
func JuliaOrbit(cRe, cIm, z0Re, z0Im float64, maxIter int) digit.Sequence {
	return orbit(z0Re, z0Im, cRe, cIm, maxIter)
}

func orbit(zRe, zIm, cRe, cIm float64, maxIter int) digit.Sequence {
	out := make(digit.Sequence, 0, maxIter)

	for i := 0; i < maxIter; i++ {
		zRe, zIm = zRe*zRe-zIm*zIm+cRe, 2*zRe*zIm+cIm

		if zRe*zRe+zIm*zIm > escapeRadiusSq {
			break
		}

		// Angle in [-pi, pi] mapped to [0, 1), then quantized.
		angle := stdmath.Atan2(zIm, zRe)
		normalized := (angle + stdmath.Pi) / (2 * stdmath.Pi)
		d := uint8(normalized * 11.99)
		if d > 11 {
			d = 11
		}
		out = append(out, d)
	}

	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}

// OrbitPoint names an interesting parameter on the complex plane.
type OrbitPoint struct {
	Name string
	CRe  float64
	CIm  float64
	Z0Re float64 // Julia starting point; zero for Mandelbrot
	Z0Im float64
}

// MandelbrotPoints are named locations near the Mandelbrot set boundary
// that produce long, structured orbits.
var MandelbrotPoints = []OrbitPoint{
	{Name: "cardioid", CRe: 0.25, CIm: 0.5},
	{Name: "spiral", CRe: -0.75, CIm: 0.1},
	{Name: "seahorse", CRe: -0.75, CIm: 0.1},
	{Name: "antenna", CRe: -1.75, CIm: 0.0},
	{Name: "period3", CRe: -0.122, CIm: 0.745},
	{Name: "elephant", CRe: 0.275, CIm: 0.0},
}

// JuliaPoints are classic Julia set parameters.
var JuliaPoints = []OrbitPoint{
	{Name: "rabbit", CRe: -0.123, CIm: 0.745},
	{Name: "dendrite", CRe: 0.0, CIm: 1.0, Z0Re: 0.01, Z0Im: 0.01},
	{Name: "dragon", CRe: -0.8, CIm: 0.156},
	{Name: "spiral", CRe: -0.4, CIm: 0.6},
	{Name: "siegel", CRe: -0.391, CIm: -0.587},
	{Name: "san_marco", CRe: -0.75, CIm: 0.0},
}
