package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when one cache backend serves several contexts, for
// example per-session plot caches in the HTTP server.
//
// Example usage:
//
//	// Session-specific keys for uploaded data
//	sessionKeyer := NewScopedKeyer(NewDefaultKeyer(), "session:abc123:")
//
//	// Global keys for public assembly data
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// AssemblyKey generates a prefixed key for assembly data caching.
func (k *ScopedKeyer) AssemblyKey(assembly string, opts AssemblyKeyOpts) string {
	return k.prefix + k.inner.AssemblyKey(assembly, opts)
}

// PlotKey generates a prefixed key for rendered plot caching.
func (k *ScopedKeyer) PlotKey(dataHash string, opts PlotKeyOpts) string {
	return k.prefix + k.inner.PlotKey(dataHash, opts)
}
