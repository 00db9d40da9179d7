// Package trafilatura provides the default article extractor, backed by
// go-trafilatura's content extraction heuristics.
package trafilatura

import (
	"bytes"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	urldoc "github.com/msaum/url-doc-to-markdown"
	"golang.org/x/net/html"
)

// Ensure Extractor implements urldoc.Extractor at compile time.
var _ urldoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content and metadata.
// Missing authors or date are tolerated; no extractable content at all is
// reported with ENOCONTENT.
func (e *Extractor) Extract(rawHTML string) (*urldoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urldoc.Errorf(urldoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, urldoc.Errorf(urldoc.ENOCONTENT, "no article content found")
	}

	return &urldoc.ExtractResult{
		Title:       result.Metadata.Title,
		Authors:     splitAuthors(result.Metadata.Author),
		PublishedAt: publishedAt(result.Metadata.Date),
		ContentHTML: contentHTML,
	}, nil
}

// splitAuthors splits trafilatura's semicolon-joined author metadata into
// individual names.
func splitAuthors(author string) []string {
	var authors []string
	for _, name := range strings.Split(author, ";") {
		if name = strings.TrimSpace(name); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// publishedAt converts a zero date to nil.
func publishedAt(date time.Time) *time.Time {
	if date.IsZero() {
		return nil
	}
	return &date
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
