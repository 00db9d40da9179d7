package mock

import (
	"context"

	urldoc "github.com/msaum/url-doc-to-markdown"
)

var _ urldoc.URLSource = (*Source)(nil)

type Source struct {
	DiscoverFn func(ctx context.Context, ref string) ([]string, error)
}

func (s *Source) Discover(ctx context.Context, ref string) ([]string, error) {
	return s.DiscoverFn(ctx, ref)
}
