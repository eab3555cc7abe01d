package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by the cache backends and the remote data clients
// built on top of them.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork covers timeouts, connection failures, and 5xx responses
	// from genome data servers.
	ErrNetwork = errors.New("network error")

	// ErrCacheMiss is returned when an item is not in the cache.
	ErrCacheMiss = errors.New("cache miss")
)

// RetryableError marks an error as transient so RetryWithBackoff will try
// the operation again.
type RetryableError struct{ Err error }

// Retryable wraps err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError anywhere in
// its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Retry policy for flaky downloads from genome data servers.
const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// RetryWithBackoff runs fn up to retryAttempts times, doubling the delay
// between tries. Only errors marked with Retryable trigger another
// attempt; everything else returns immediately.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	var lastErr error

	for attempt := 0; attempt < retryAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == retryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
