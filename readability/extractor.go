// Package readability provides an alternative article extractor backed by
// go-readability, for sites where trafilatura's heuristics fall short.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	urldoc "github.com/msaum/url-doc-to-markdown"
)

// Ensure Extractor implements urldoc.Extractor at compile time.
var _ urldoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content and metadata.
// The byline, when present, becomes the single author.
func (e *Extractor) Extract(rawHTML string) (*urldoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urldoc.Errorf(urldoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return nil, urldoc.Errorf(urldoc.ENOCONTENT, "no article content found")
	}

	var authors []string
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		authors = []string{byline}
	}

	return &urldoc.ExtractResult{
		Title:       article.Title,
		Authors:     authors,
		PublishedAt: article.PublishedTime,
		ContentHTML: article.Content,
	}, nil
}
