// Package gofeed provides an RSS/Atom feed implementation of
// urldoc.URLSource, expanding a feed URL into its item links.
package gofeed

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
	urldoc "github.com/msaum/url-doc-to-markdown"
)

// Ensure Source implements urldoc.URLSource at compile time.
var _ urldoc.URLSource = (*Source)(nil)

// Source parses an RSS or Atom feed and returns the article URLs it links.
type Source struct {
	parser *gofeed.Parser
}

// Option configures a Source.
type Option func(*Source)

// WithUserAgent overrides the User-Agent header used when fetching feeds.
func WithUserAgent(ua string) Option {
	return func(s *Source) {
		s.parser.UserAgent = ua
	}
}

// NewSource creates a new feed Source.
func NewSource(opts ...Option) *Source {
	s := &Source{parser: gofeed.NewParser()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover fetches and parses the feed at ref, returning item links in feed
// order, deduplicated. An unreachable or unparseable feed is EUNAVAILABLE.
func (s *Source) Discover(ctx context.Context, ref string) ([]string, error) {
	feed, err := s.parser.ParseURLWithContext(ref, ctx)
	if err != nil {
		return nil, urldoc.Errorf(urldoc.EUNAVAILABLE, "parsing feed %s: %v", ref, err)
	}

	seen := make(map[string]bool)
	var urls []string
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true
		urls = append(urls, link)
	}

	return urls, nil
}
