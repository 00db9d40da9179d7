package urldoc

import "context"

// URLSource expands a remote reference into the article URLs it points at.
// Implementations cover RSS/Atom feeds and XML sitemaps; markdown files are
// handled locally by the pipeline's link discovery.
type URLSource interface {
	Discover(ctx context.Context, ref string) ([]string, error)
}
