// Package convert transforms raw domain data into base-12 digit sequences.
//
// Each converter is a stateless, total function: degenerate series yield a
// defined sentinel digit, unrecognized symbols are skipped, and unknown
// names resolve to safe defaults. The only caller-visible failure is
// ErrConversionFailed, returned when raw input cannot be interpreted as the
// expected primitive type at all (no usable bases, no samples). Callers are
// expected to skip or report such sources and continue with others.
package convert

import (
	"errors"
	"fmt"

	"github.com/sevenpixels/datawalk/pkg/convert/math"
	"github.com/sevenpixels/datawalk/pkg/digit"
)

// ErrConversionFailed marks input that could not be interpreted at all.
// Match with errors.Is.
var ErrConversionFailed = errors.New("conversion failed")

func failf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConversionFailed, fmt.Sprintf(format, args...))
}

// ErrUnknownConverter is returned by Generate for keys no generator claims.
var ErrUnknownConverter = errors.New("unknown converter")

// Generate produces a digit sequence for a self-contained math converter
// key (constants, fractals, orbits, sequences). Data-driven converters
// (dna, audio, finance, cosmos) take decoded input directly through their
// own functions.
func Generate(key string, nDigits int) (digit.Sequence, error) {
	gen, ok := math.Parse(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, key)
	}
	return gen.Generate(nDigits), nil
}

// IsGenerated reports whether a converter key is computed rather than fed
// from raw data files.
func IsGenerated(key string) bool {
	_, ok := math.Parse(key)
	return ok
}
