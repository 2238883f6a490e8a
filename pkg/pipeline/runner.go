package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sevenpixels/datawalk/pkg/cache"
	"github.com/sevenpixels/datawalk/pkg/convert"
	"github.com/sevenpixels/datawalk/pkg/digit"
	"github.com/sevenpixels/datawalk/pkg/observability"
	"github.com/sevenpixels/datawalk/pkg/walk"
)

// Runner executes the pipeline with caching. It is stateless apart from
// the cache and logger; one Runner serves concurrent requests with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer gets the default keyer; a nil
// cache disables caching; a nil logger gets the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete convert → walk pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	convertStart := time.Now()
	digits, convertHit, err := r.ConvertWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	result.Digits = digits
	result.DigitsHash = cache.Hash([]byte(digits))
	result.Stats.ConvertTime = time.Since(convertStart)
	result.Stats.DigitCount = len(digits)
	result.CacheInfo.ConvertHit = convertHit

	r.Logger.Info("converted source",
		"source", opts.SourceID,
		"converter", opts.Converter,
		"digits", len(digits),
		"duration", result.Stats.ConvertTime)

	walkStart := time.Now()
	points, walkHit, err := r.WalkWithCacheInfo(ctx, digits, opts)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	result.Points = points
	result.Stats.WalkTime = time.Since(walkStart)
	result.Stats.PointCount = len(points)
	result.CacheInfo.WalkHit = walkHit

	r.Logger.Info("walked digits",
		"points", len(points),
		"duration", result.Stats.WalkTime)

	return result, nil
}

// ConvertWithCacheInfo converts a source to digits with caching and
// reports whether the result came from cache.
func (r *Runner) ConvertWithCacheInfo(ctx context.Context, opts Options) (digit.Sequence, bool, error) {
	if err := opts.ValidateForConvert(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnConvertStart(ctx, opts.SourceID, opts.Converter)

	var raw []byte
	keyOpts := cache.DigitsKeyOpts{NDigits: opts.NDigits}
	if opts.DataFile != "" {
		data, err := os.ReadFile(opts.DataFile)
		if err != nil {
			return nil, false, fmt.Errorf("read source data: %w", err)
		}
		raw = data
		keyOpts.DataSum = cache.Hash(data)
	}
	if opts.Base4 {
		keyOpts.DataSum += ":base4"
	}
	cacheKey := r.Keyer.DigitsKey(opts.Converter, keyOpts)

	// Digit sequences serialize as themselves, one byte per digit.
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit && len(data) > 0 {
			observability.Cache().OnCacheHit(ctx, "digits")
			observability.Pipeline().OnConvertComplete(ctx, opts.SourceID, opts.Converter, len(data), time.Since(start), nil)
			return digit.Sequence(data), true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "digits")
	}

	var digits digit.Sequence
	var err error
	if convert.IsGenerated(opts.Converter) {
		digits, err = convert.Generate(opts.Converter, opts.NDigits)
	} else {
		digits, err = ConvertFile(opts.Converter, raw, opts.Base4)
	}
	observability.Pipeline().OnConvertComplete(ctx, opts.SourceID, opts.Converter, len(digits), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, []byte(digits), cache.DigitsTTL)
	observability.Cache().OnCacheSet(ctx, "digits", len(digits))

	return digits, false, nil
}

// Convert converts and discards the cache hit info.
func (r *Runner) Convert(ctx context.Context, opts Options) (digit.Sequence, error) {
	digits, _, err := r.ConvertWithCacheInfo(ctx, opts)
	return digits, err
}

// WalkWithCacheInfo walks a digit sequence with caching and reports
// whether the path came from cache.
func (r *Runner) WalkWithCacheInfo(ctx context.Context, digits digit.Sequence, opts Options) ([]walk.Point, bool, error) {
	opts.SetWalkDefaults()
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnWalkStart(ctx, opts.SourceID, len(digits))

	sig := opts.mappingSignature()
	if opts.Base4 {
		sig += ":base4"
	}
	cacheKey := r.Keyer.PointsKey(cache.Hash([]byte(digits)), cache.PointsKeyOpts{
		Mapping:   sig,
		MaxPoints: opts.MaxPoints,
	})

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached []walk.Point
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "points")
			observability.Pipeline().OnWalkComplete(ctx, opts.SourceID, len(cached), time.Since(start), nil)
			return cached, true, nil
		}
		// Corrupt entry, fall through and recompute.
	}
	observability.Cache().OnCacheMiss(ctx, "points")

	var points []walk.Point
	if opts.Base4 {
		points = walk.Walk4(digits, opts.maxPoints())
	} else {
		points = walk.Walk(digits, opts.Mapping, opts.maxPoints())
	}

	if data, err := json.Marshal(points); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.PointsTTL)
		observability.Cache().OnCacheSet(ctx, "points", len(data))
	}

	observability.Pipeline().OnWalkComplete(ctx, opts.SourceID, len(points), time.Since(start), nil)
	return points, false, nil
}

// Walk walks and discards the cache hit info.
func (r *Runner) Walk(ctx context.Context, digits digit.Sequence, opts Options) ([]walk.Point, error) {
	points, _, err := r.WalkWithCacheInfo(ctx, digits, opts)
	return points, err
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
