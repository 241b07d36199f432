package harvest

import (
	"context"
	"time"

	"github.com/fwojciec/oscar"
)

// RetrieveFunc is the signature for a retrieve function.
type RetrieveFunc func(ctx context.Context, term string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for retrieve retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetrieveWithRetry attempts to retrieve a term with exponential backoff retry logic.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// The logger function, if provided, is called for each retry attempt.
func RetrieveWithRetry(ctx context.Context, term string, retrieve RetrieveFunc, logger LogFunc) (string, error) {
	return RetrieveWithRetryDelays(ctx, term, retrieve, logger, DefaultRetryDelays())
}

// RetrieveWithRetryDelays is like RetrieveWithRetry but allows configurable delays.
// EINVALID errors are returned without retrying.
func RetrieveWithRetryDelays(ctx context.Context, term string, retrieve RetrieveFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := retrieve(ctx, term)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if oscar.ErrorCode(err) == oscar.EINVALID || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", term, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
