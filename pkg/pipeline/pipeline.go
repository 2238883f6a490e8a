// Package pipeline runs the convert → walk pipeline with per-stage
// caching. CLI and API share the same Runner so caching behavior is
// identical across entry points.
//
// The pipeline has two stages:
//
//  1. Convert: turn a data source (generated math source or local raw
//     data file) into a digit sequence
//  2. Walk: map the digits and walk them into a 3-D point path
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SourceID:  "pi",
//	    Converter: "math.constant.pi",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	points := result.Points
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sevenpixels/datawalk/pkg/convert"
	"github.com/sevenpixels/datawalk/pkg/digit"
	"github.com/sevenpixels/datawalk/pkg/walk"
)

const (
	// DefaultNDigits is how many digits generated sources produce when
	// the caller doesn't say. File sources always convert their whole
	// input.
	DefaultNDigits = 5000

	// DefaultMaxPoints caps walked paths so pathological sources can't
	// produce unbounded responses. Zero in Options means this default;
	// a negative value disables the cap.
	DefaultMaxPoints = 10000
)

// Options configures one pipeline run. The struct is JSON-serializable
// for API requests.
type Options struct {
	// SourceID identifies the source for raw-data cache keys and logs.
	SourceID string `json:"source_id"`

	// Converter selects the conversion, either a generated math key
	// (math.constant.pi, math.fractal.dragon, ...) or a file converter
	// (dna, audio, finance, cosmos).
	Converter string `json:"converter"`

	// DataFile is the local raw data file for file converters.
	DataFile string `json:"data_file,omitempty"`

	// NDigits is the digit count for generated sources.
	NDigits int `json:"n_digits,omitempty"`

	// Mapping is the digit mapping table. Zero value means identity.
	Mapping walk.Mapping `json:"mapping,omitempty"`

	// MaxPoints caps the walked path; negative disables the cap.
	MaxPoints int `json:"max_points,omitempty"`

	// Base4 walks DNA on the 2-D base-4 lattice instead of repacking
	// to base 12. Only meaningful with the dna converter.
	Base4 bool `json:"base4,omitempty"`

	// Refresh bypasses the digit cache and reconverts.
	Refresh bool `json:"refresh,omitempty"`

	// Logger is used for stage logging. Not serialized.
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Digits is the converted digit sequence.
	Digits digit.Sequence

	// DigitsHash is the content hash of the digit sequence.
	DigitsHash string

	// Points is the walked path.
	Points []walk.Point

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	DigitCount  int
	PointCount  int
	ConvertTime time.Duration
	WalkTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ConvertHit bool
	WalkHit    bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForConvert(); err != nil {
		return err
	}
	o.SetWalkDefaults()
	o.validated = true
	return nil
}

// ValidateForConvert checks required fields for the convert stage.
func (o *Options) ValidateForConvert() error {
	if o.Converter == "" {
		return fmt.Errorf("converter is required")
	}
	if !convert.IsGenerated(o.Converter) && o.DataFile == "" {
		return fmt.Errorf("data_file is required for converter %q", o.Converter)
	}
	if o.NDigits == 0 {
		o.NDigits = DefaultNDigits
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetWalkDefaults applies defaults for the walk stage.
func (o *Options) SetWalkDefaults() {
	if o.Mapping == (walk.Mapping{}) {
		o.Mapping = walk.Identity()
	}
	if o.MaxPoints == 0 {
		o.MaxPoints = DefaultMaxPoints
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// maxPoints translates the Options convention (negative = unlimited)
// into the walk package convention (<=0 = unlimited).
func (o *Options) maxPoints() int {
	if o.MaxPoints < 0 {
		return 0
	}
	return o.MaxPoints
}

// mappingSignature is the cache key form of the mapping table.
func (o *Options) mappingSignature() string {
	return fmt.Sprint([12]uint8(o.Mapping))
}
