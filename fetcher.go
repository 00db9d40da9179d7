package urldoc

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP requests or browser automation to
// handle JavaScript-rendered pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Network and timeout failures carry EUNAVAILABLE; non-2xx
	// responses carry EUPSTREAM. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
