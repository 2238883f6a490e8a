// Package config loads the two configuration surfaces of datawalk: the
// YAML source manifest (which data sources exist and how they convert)
// and the TOML application settings (ports, directories, backends).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sevenpixels/datawalk/pkg/walk"
)

// Source describes one data source: where its raw data lives and which
// converter and digit mapping turn it into a walk.
type Source struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Subcategory string `yaml:"subcategory"`
	Converter   string `yaml:"converter"`
	Mapping     string `yaml:"mapping"`
	URL         string `yaml:"url"`
}

// Manifest is the parsed sources.yaml: named digit-mapping tables,
// category display labels and the source list.
type Manifest struct {
	Mappings   map[string][]uint8 `yaml:"mappings"`
	Categories map[string]string  `yaml:"categories"`
	Sources    []Source           `yaml:"sources"`
}

// LoadManifest reads and parses a YAML source manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	return &m, nil
}

// Mapping resolves a named digit mapping. Unknown names resolve to the
// identity mapping by contract — configuration typos degrade the walk, not
// the service. Manifest tables take precedence over built-in presets.
func (m *Manifest) Mapping(name string) walk.Mapping {
	if table, ok := m.Mappings[name]; ok {
		return walk.FromSlice(table)
	}
	return walk.Named(name)
}

// Source returns the source with the given ID.
func (m *Manifest) Source(id string) (Source, bool) {
	for _, s := range m.Sources {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}

// SourcesByCategory returns all sources in a category, preserving manifest
// order.
func (m *Manifest) SourcesByCategory(category string) []Source {
	var out []Source
	for _, s := range m.Sources {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Default returns a built-in manifest covering the self-contained math
// sources, so the service is usable without a sources.yaml on disk.
func Default() *Manifest {
	return &Manifest{
		Mappings: map[string][]uint8{
			"Identity": {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			"Optimal":  {0, 1, 2, 3, 4, 5, 6, 7, 10, 9, 8, 11},
		},
		Categories: map[string]string{
			"math": "Mathematics",
		},
		Sources: []Source{
			{ID: "pi", Name: "Pi", Category: "math", Subcategory: "constants", Converter: "math.constant.pi", Mapping: "Identity"},
			{ID: "e", Name: "Euler's Number", Category: "math", Subcategory: "constants", Converter: "math.constant.e", Mapping: "Identity"},
			{ID: "sqrt2", Name: "Square Root of 2", Category: "math", Subcategory: "constants", Converter: "math.constant.sqrt2", Mapping: "Identity"},
			{ID: "phi", Name: "Golden Ratio", Category: "math", Subcategory: "constants", Converter: "math.constant.phi", Mapping: "Identity"},
			{ID: "ln2", Name: "Natural Log of 2", Category: "math", Subcategory: "constants", Converter: "math.constant.ln2", Mapping: "Identity"},
			{ID: "dragon", Name: "Dragon Curve", Category: "math", Subcategory: "fractals", Converter: "math.fractal.dragon", Mapping: "Identity"},
			{ID: "koch", Name: "Koch Snowflake", Category: "math", Subcategory: "fractals", Converter: "math.fractal.koch", Mapping: "Identity"},
			{ID: "hilbert", Name: "Hilbert Curve", Category: "math", Subcategory: "fractals", Converter: "math.fractal.hilbert", Mapping: "Identity"},
			{ID: "gosper", Name: "Gosper Curve", Category: "math", Subcategory: "fractals", Converter: "math.fractal.gosper", Mapping: "Identity"},
			{ID: "mandelbrot-spiral", Name: "Mandelbrot Spiral", Category: "math", Subcategory: "orbits", Converter: "math.mandelbrot.spiral", Mapping: "Identity"},
			{ID: "julia-rabbit", Name: "Douady Rabbit", Category: "math", Subcategory: "orbits", Converter: "math.julia.rabbit", Mapping: "Identity"},
		},
	}
}
