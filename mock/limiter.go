package mock

import (
	"context"

	"github.com/wayharvest/wayharvest"
)

var _ wayharvest.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of wayharvest.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
