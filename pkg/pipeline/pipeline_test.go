package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sevenpixels/datawalk/pkg/cache"
	"github.com/sevenpixels/datawalk/pkg/walk"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestExecuteGeneratedSource(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, testLogger())

	result, err := r.Execute(ctx, Options{
		SourceID:  "pi",
		Converter: "math.constant.pi",
		NDigits:   200,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.DigitCount != 200 {
		t.Errorf("DigitCount = %d", result.Stats.DigitCount)
	}
	if result.Digits[0] != 3 {
		t.Errorf("pi should start with digit 3, got %d", result.Digits[0])
	}
	if result.Stats.PointCount != len(result.Points) {
		t.Error("PointCount should match Points")
	}
	if len(result.Points) == 0 {
		t.Fatal("no points")
	}
	if result.DigitsHash == "" {
		t.Error("DigitsHash should be set")
	}
	if result.CacheInfo.ConvertHit || result.CacheInfo.WalkHit {
		t.Error("null cache should never hit")
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	opts := Options{SourceID: "e", Converter: "math.constant.e", NDigits: 100}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.ConvertHit || first.CacheInfo.WalkHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.ConvertHit {
		t.Error("second run should hit the digit cache")
	}
	if !second.CacheInfo.WalkHit {
		t.Error("second run should hit the point cache")
	}
	if len(second.Points) != len(first.Points) {
		t.Errorf("cached points differ: %d vs %d", len(second.Points), len(first.Points))
	}
	for i := range first.Points {
		if second.Points[i] != first.Points[i] {
			t.Fatalf("point %d differs after cache round trip", i)
		}
	}
}

func TestExecuteRefreshBypassesDigitCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, testLogger())
	defer r.Close()

	opts := Options{SourceID: "phi", Converter: "math.constant.phi", NDigits: 50}
	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	result, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.ConvertHit {
		t.Error("refresh should bypass the digit cache")
	}
}

func TestExecuteDNAFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "genome.fasta")
	if err := os.WriteFile(path, []byte(">test\nACGTACGTACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, testLogger())
	result, err := r.Execute(ctx, Options{
		SourceID:  "test-dna",
		Converter: ConverterDNA,
		DataFile:  path,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Digits) == 0 {
		t.Fatal("no digits")
	}
	for _, d := range result.Digits {
		if d > 11 {
			t.Fatalf("digit %d out of base-12 range", d)
		}
	}
}

func TestExecuteDNABase4(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "genome.fasta")
	if err := os.WriteFile(path, []byte(">test\nACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, testLogger())
	result, err := r.Execute(ctx, Options{
		SourceID:  "test-dna",
		Converter: ConverterDNA,
		DataFile:  path,
		Base4:     true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Digits) != 4 {
		t.Errorf("base-4 digits = %v", result.Digits)
	}
	// Lattice walk stays in the plane except for revisit stacking.
	for _, p := range result.Points {
		if p[2] < 0 {
			t.Errorf("negative Z in lattice walk: %v", p)
		}
	}
}

func TestExecuteUnknownConverter(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	_, err := r.Execute(context.Background(), Options{
		SourceID:  "x",
		Converter: "nope",
		DataFile:  "/does/not/matter",
	})
	if err == nil {
		t.Fatal("expected error for unknown converter")
	}
}

func TestOptionsValidation(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err == nil {
		t.Error("empty converter should fail validation")
	}

	o = Options{Converter: ConverterDNA}
	if err := o.ValidateAndSetDefaults(); err == nil {
		t.Error("file converter without data_file should fail validation")
	}

	o = Options{Converter: "math.constant.pi"}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if o.NDigits != DefaultNDigits {
		t.Errorf("NDigits default = %d", o.NDigits)
	}
	if o.MaxPoints != DefaultMaxPoints {
		t.Errorf("MaxPoints default = %d", o.MaxPoints)
	}
	if o.Mapping != walk.Identity() {
		t.Errorf("Mapping default = %v", o.Mapping)
	}
}

func TestWalkMaxPoints(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, testLogger())

	digits, err := r.Convert(ctx, Options{Converter: "math.constant.pi", NDigits: 1000})
	if err != nil {
		t.Fatal(err)
	}

	points, err := r.Walk(ctx, digits, Options{Converter: "math.constant.pi", MaxPoints: 10})
	if err != nil {
		t.Fatal(err)
	}
	// Subsampling may add one extra entry to preserve the final point.
	if len(points) > 11 {
		t.Errorf("len(points) = %d, want <= 11", len(points))
	}

	all, err := r.Walk(ctx, digits, Options{Converter: "math.constant.pi", MaxPoints: -1})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1000 {
		t.Errorf("unlimited walk should keep all points, got %d", len(all))
	}
}
