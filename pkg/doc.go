// Package pkg provides the core libraries for datawalk.
//
// # Overview
//
// Datawalk turns heterogeneous data into digit sequences and walks them
// through 3-D space. The pkg directory is organized around the two-stage
// pipeline:
//
//	Raw data (FASTA, WAV, price JSON, strain files) or a math generator
//	         ↓
//	    [convert] package (data → base-12 or base-4 digits)
//	         ↓
//	    [walk] package (digits → 3-D point path)
//	         ↓
//	    JSON / SVG output via [render]
//
// # Main Packages
//
// [digit] - The digit sequence type and base repacking helpers.
//
// [convert] - Converters from raw data to digit sequences: DNA, audio,
// finance and gravitational-wave strain, plus the self-contained math
// generators under [convert/math] (constants, fractal turtle programs,
// Mandelbrot and Julia orbits, symbolic sequences).
//
// [source] - Readers for the raw data formats the converters consume.
//
// [walk] - The quaternion turtle engine: digit mappings, the 3-D walk and
// the base-4 lattice walk.
//
// [pipeline] - Orchestration of convert and walk with per-stage caching,
// used by the CLI and the HTTP API.
//
// [cache] - Cache interface with file, Redis and null backends, plus the
// key scheme for raw data, digits and points.
//
// [store] - Persistence for seeded walks (memory and MongoDB).
//
// [render] - Output sinks: JSON point documents and projected SVG paths.
//
// [config] - The YAML source manifest and TOML application settings.
//
// [errors] - Structured error codes and input validation.
//
// [observability] - Pipeline and cache lifecycle hooks.
//
// # Quick Start
//
// Convert and walk the digits of pi:
//
//	import (
//	    "context"
//	    "github.com/sevenpixels/datawalk/pkg/cache"
//	    "github.com/sevenpixels/datawalk/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    SourceID:  "pi",
//	    Converter: "math.constant.pi",
//	    NDigits:   5000,
//	})
//	for _, p := range result.Points {
//	    fmt.Println(p.X, p.Y, p.Z)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/walk/...     # Specific package
//
// [convert]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/convert
// [convert/math]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/convert/math
// [digit]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/digit
// [source]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/source
// [walk]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/walk
// [pipeline]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/cache
// [store]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/store
// [render]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/render
// [config]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/config
// [errors]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sevenpixels/datawalk/pkg/observability
package pkg
