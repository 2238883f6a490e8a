package render

import (
	"encoding/json"

	"github.com/sevenpixels/datawalk/pkg/walk"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id      string
	name    string
	mapping string
}

// WithJSONSource records the source ID and display name in the output.
func WithJSONSource(id, name string) JSONOption {
	return func(r *jsonRenderer) { r.id = id; r.name = name }
}

// WithJSONMapping records the mapping name used for the walk, enabling
// reproducible re-walks from the exported document.
func WithJSONMapping(name string) JSONOption {
	return func(r *jsonRenderer) { r.mapping = name }
}

type pointsDocument struct {
	ID      string       `json:"id,omitempty"`
	Name    string       `json:"name,omitempty"`
	Mapping string       `json:"mapping,omitempty"`
	Count   int          `json:"count"`
	Points  []walk.Point `json:"points"`
}

// RenderJSON exports a point path as a JSON document.
func RenderJSON(points []walk.Point, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	if points == nil {
		points = []walk.Point{}
	}
	doc := pointsDocument{
		ID:      r.id,
		Name:    r.name,
		Mapping: r.mapping,
		Count:   len(points),
		Points:  points,
	}
	return json.MarshalIndent(doc, "", "  ")
}
