// Package cache provides caching for remote genome data and rendered
// plots.
//
// # Overview
//
// The [Cache] interface abstracts the storage backend. Three backends
// are included:
//
//   - [FileCache]: file-based cache for CLI usage
//   - [RedisCache]: Redis-backed cache for server deployments
//   - [NullCache]: no-op cache for tests or disabled caching
//
// The [Keyer] interface generates cache keys for the different cached
// artifacts (HTTP responses, assembly data, rendered plots), so key
// layout stays consistent across backends.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per artifact class.
const (
	// TTLAssembly applies to assembly data (chromosome sizes, cytoband
	// tables). Released assemblies are effectively immutable.
	TTLAssembly = 7 * 24 * time.Hour

	// TTLPlot applies to rendered plot artifacts.
	TTLPlot = 24 * time.Hour
)

// Cache is the storage backend interface.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// AssemblyKeyOpts parameterize assembly data cache keys.
type AssemblyKeyOpts struct {
	// Kind of data: "chromsizes" or "cytobands".
	Kind string
}

// PlotKeyOpts parameterize rendered plot cache keys.
type PlotKeyOpts struct {
	Format string  // "svg" or "png"
	Width  float64 // canvas width
	Height float64 // canvas height
	Type   int     // plot type
}

// Keyer generates cache keys for the artifacts karyoplot caches.
type Keyer interface {
	// HTTPKey generates a key for raw HTTP response caching.
	HTTPKey(namespace, key string) string

	// AssemblyKey generates a key for parsed assembly data.
	AssemblyKey(assembly string, opts AssemblyKeyOpts) string

	// PlotKey generates a key for a rendered plot, derived from the
	// hash of the plot's input data.
	PlotKey(dataHash string, opts PlotKeyOpts) string
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
// HTTP keys stay readable so cache contents can be inspected.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// AssemblyKey generates a key for parsed assembly data.
func (k *DefaultKeyer) AssemblyKey(assembly string, opts AssemblyKeyOpts) string {
	return hashKey("assembly", assembly, opts)
}

// PlotKey generates a key for a rendered plot.
func (k *DefaultKeyer) PlotKey(dataHash string, opts PlotKeyOpts) string {
	return hashKey("plot", dataHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
