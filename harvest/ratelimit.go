package harvest

import (
	"context"

	"github.com/wayharvest/wayharvest"
	"golang.org/x/time/rate"
)

// Limiter throttles requests to the archive with a token bucket. Every
// snapshot fetch goes to the same host, so one bucket covers the whole run.
type Limiter struct {
	limiter *rate.Limiter
}

var _ wayharvest.Limiter = (*Limiter)(nil)

// NewLimiter creates a limiter allowing requestsPerSecond sustained
// throughput with no burst beyond a single request.
func NewLimiter(requestsPerSecond float64) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Wait blocks until the next request is allowed or ctx is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
