package mock

import (
	"context"

	"github.com/fwojciec/oscar"
)

var _ oscar.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of oscar.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, term string) (string, error)
}

func (r *Retriever) Retrieve(ctx context.Context, term string) (string, error) {
	return r.RetrieveFn(ctx, term)
}

var _ oscar.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of oscar.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
