package mock

import (
	"context"

	urldoc "github.com/msaum/url-doc-to-markdown"
)

var _ urldoc.Archive = (*Archive)(nil)

type Archive struct {
	ExistsFn func(slug string) (bool, error)
	WriteFn  func(ctx context.Context, slug, content string) (string, error)
}

func (a *Archive) Exists(slug string) (bool, error) {
	return a.ExistsFn(slug)
}

func (a *Archive) Write(ctx context.Context, slug, content string) (string, error) {
	return a.WriteFn(ctx, slug, content)
}
