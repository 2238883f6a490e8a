package cache

// ScopedKeyer prefixes every key produced by an inner Keyer. Used to keep
// per-manifest namespaces apart when one cache backend serves several
// deployments.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RawKey generates a prefixed key for raw source bytes.
func (k *ScopedKeyer) RawKey(sourceID string) string {
	return k.prefix + k.inner.RawKey(sourceID)
}

// DigitsKey generates a prefixed key for a digit sequence.
func (k *ScopedKeyer) DigitsKey(converter string, opts DigitsKeyOpts) string {
	return k.prefix + k.inner.DigitsKey(converter, opts)
}

// PointsKey generates a prefixed key for a point path.
func (k *ScopedKeyer) PointsKey(digitsHash string, opts PointsKeyOpts) string {
	return k.prefix + k.inner.PointsKey(digitsHash, opts)
}
