package util

import (
	"time"

	"github.com/cenkalti/backoff"
)

var timeout = 60 * time.Second

// ApplyWithBackoff tries to apply the specified function using an exponential backoff algorithm.
// If the function eventually succeed nil is returned, otherwise the error returned by f.
// Errors wrapped with Permanent stop the retries immediately.
func ApplyWithBackoff(f func() error) error {
	exponentialBackOff := backoff.NewExponentialBackOff()
	exponentialBackOff.MaxElapsedTime = timeout
	exponentialBackOff.Reset()
	err := backoff.Retry(f, exponentialBackOff)
	if permanent, ok := err.(*backoff.PermanentError); ok {
		return permanent.Err
	}
	return err
}

// Permanent marks err as not worth retrying in ApplyWithBackoff.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
