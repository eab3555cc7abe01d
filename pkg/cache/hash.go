package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced cache key: the prefix plus the SHA-256 of
// the JSON-encoded parts. Assembly and plot keys go through here so any
// option change (format, dimensions, plot type) yields a distinct key.
func hashKey(prefix string, parts ...any) string {
	raw, _ := json.Marshal(parts)
	sum := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the full hex SHA-256 of data. Plot input hashing and the
// file cache fan-out both rely on it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
