// Package digit provides the canonical digit-sequence representation shared
// by every data converter and the walk engine.
//
// A digit is an integer in [0, R) where R is 12 (the walk alphabet) or 4
// (the genomic/lattice alphabet). Sequences are plain byte slices so that
// converters stay allocation-friendly and artifacts serialize as JSON arrays
// of small integers.
//
// The codec favors total functions: degenerate inputs produce defined
// sentinel digits instead of errors, matching the fallback policies used
// throughout the converter layer.
package digit

// Radices supported by the codec. No other bases are supported.
const (
	Base12 = 12
	Base4  = 4
)

// Sequence is an ordered list of digits produced by a converter.
// A Sequence is never empty: converters emit a defined fallback digit when
// the input carries no usable signal.
type Sequence []uint8

// Valid reports whether every digit is below the given base.
func (s Sequence) Valid(base int) bool {
	for _, d := range s {
		if int(d) >= base {
			return false
		}
	}
	return true
}

// Normalize maps a real-valued series onto base-R digits using min-max
// scaling. The minimum value maps to digit 0 and the maximum to R-1.
//
// Degenerate inputs follow the codec's fallback policy:
//   - empty series: a single 0 digit
//   - constant series (max == min): the middle digit R/2 for every sample
func Normalize(values []float64, base int) Sequence {
	if len(values) == 0 {
		return Sequence{0}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		mid := uint8(base / 2)
		out := make(Sequence, len(values))
		for i := range out {
			out[i] = mid
		}
		return out
	}

	scale := float64(base) - 0.01
	out := make(Sequence, len(values))
	for i, v := range values {
		d := int((v - min) / (max - min) * scale)
		if d < 0 {
			d = 0
		}
		if d >= base {
			d = base - 1
		}
		out[i] = uint8(d)
	}
	return out
}
