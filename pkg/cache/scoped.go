package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving several
// deployments sharing one Redis their own namespace.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BlueprintKey returns the prefixed blueprint key.
func (k *ScopedKeyer) BlueprintKey(specHash string, opts BlueprintKeyOpts) string {
	return k.prefix + k.inner.BlueprintKey(specHash, opts)
}
