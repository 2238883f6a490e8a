package cache

// Keyer generates cache keys for the three pipeline stages. Keys embed
// every parameter that changes the stage's output, so a parameter change
// is automatically a cache miss rather than a wrong hit.
type Keyer interface {
	// RawKey keys downloaded source bytes by source ID.
	RawKey(sourceID string) string

	// DigitsKey keys a converted digit sequence.
	DigitsKey(converter string, opts DigitsKeyOpts) string

	// PointsKey keys a walked point path by the hash of its digit
	// sequence plus the walk parameters.
	PointsKey(digitsHash string, opts PointsKeyOpts) string
}

// DigitsKeyOpts are the parameters that affect digit conversion.
type DigitsKeyOpts struct {
	NDigits int    `json:"n_digits"`
	DataSum string `json:"data_sum,omitempty"` // hash of raw input, empty for generated sources
}

// PointsKeyOpts are the parameters that affect the walk.
type PointsKeyOpts struct {
	Mapping   string `json:"mapping"` // mapping table signature
	MaxPoints int    `json:"max_points"`
}

// DefaultKeyer is the standard key scheme: a short namespace prefix
// followed by a SHA-256 over the JSON-encoded parameters.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RawKey generates a key for raw source bytes.
func (k *DefaultKeyer) RawKey(sourceID string) string {
	return "raw:" + sourceID
}

// DigitsKey generates a key for a digit sequence.
func (k *DefaultKeyer) DigitsKey(converter string, opts DigitsKeyOpts) string {
	return hashKey("digits", converter, opts)
}

// PointsKey generates a key for a point path.
func (k *DefaultKeyer) PointsKey(digitsHash string, opts PointsKeyOpts) string {
	return hashKey("points", digitsHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
