package wayharvest

import "context"

// Fetcher retrieves page content from URLs.
type Fetcher interface {
	// Fetch performs the request and returns the response body decoded to
	// UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter throttles outgoing archive requests.
type Limiter interface {
	// Wait blocks until the rate limit allows the next request. It returns
	// an error if the context is canceled first.
	Wait(ctx context.Context) error
}
