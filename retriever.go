package oscar

import "context"

// Retriever obtains the raw section search document for a term.
type Retriever interface {
	// Retrieve returns the rendered search results for every section in the
	// term. Transport failures are returned unmodified.
	Retrieve(ctx context.Context, term string) (document string, err error)
}

// RateLimiter paces requests to the registration system.
// *rate.Limiter from golang.org/x/time/rate satisfies it.
type RateLimiter interface {
	Wait(ctx context.Context) error
}
