package integrations

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bio-traven/karyoploteR/pkg/cache"
)

// Genomic downloads (cytoband tables, chromosome sizes) are small but the
// upstream servers can be slow.
const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when an assembly or resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for data downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// DefaultCacheDir returns the default on-disk cache location
// (~/.cache/karyoplot).
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "karyoplot"), nil
}

// NewDefaultCache creates a file-based cache in the default cache directory.
func NewDefaultCache() (cache.Cache, error) {
	dir, err := DefaultCacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
