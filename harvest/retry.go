package harvest

import (
	"context"
	"time"
)

// FetchFunc is the signature for a single fetch attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the standard backoff delays between fetch
// attempts: 1s, 2s, 4s. The archive throttles aggressively, so transient
// failures are routine.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
	}
}

// FetchWithRetryDelays attempts a fetch with backoff between attempts; the
// number of attempts is len(delays)+1. It returns the last error once the
// attempts are exhausted, or the context error if canceled while waiting.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
