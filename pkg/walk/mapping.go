package walk

import "sort"

// Mapping is a permutation of {0..11} that reassigns which digit performs
// which turtle action. Mappings come from the source manifest and from user
// input, so they are applied defensively: an out-of-range entry acts as
// identity for that digit instead of panicking.
type Mapping [12]uint8

// Identity returns the identity mapping.
func Identity() Mapping {
	return Mapping{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
}

// Named mapping presets. These mirror the tables shipped in the default
// source manifest; the manifest may override or extend them.
var presets = map[string]Mapping{
	"Identity":  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	"Optimal":   {0, 1, 2, 3, 4, 5, 6, 7, 10, 9, 8, 11},
	"Spiral":    {0, 2, 4, 6, 8, 10, 1, 3, 5, 7, 9, 11},
	"Stock-opt": {1, 0, 2, 4, 10, 5, 6, 9, 8, 7, 3, 11},
}

// Named resolves a preset mapping by name. Unknown names resolve to the
// identity mapping, never an error.
func Named(name string) Mapping {
	if m, ok := presets[name]; ok {
		return m
	}
	return Identity()
}

// Names returns the preset mapping names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromSlice builds a Mapping from a configured table. Short tables are
// padded with identity entries; extra values are ignored. Validation of
// out-of-range entries happens at application time, not here.
func FromSlice(vals []uint8) Mapping {
	m := Identity()
	for i, v := range vals {
		if i >= len(m) {
			break
		}
		m[i] = v
	}
	return m
}

// apply remaps a digit through the permutation. Entries outside [0, 12)
// fall back to the digit itself, preserving the total-function contract
// for malformed configuration.
func (m Mapping) apply(d uint8) uint8 {
	d %= 12
	v := m[d]
	if v >= 12 {
		return d
	}
	return v
}
