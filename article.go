package urldoc

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// Article is the structured result of extracting one web page. It exists
// only for the duration of a pipeline run; the rendered document is the
// persistent form.
type Article struct {
	// SourceURL is the canonicalized URL the article was fetched from.
	SourceURL string

	// Title is the article title. Empty when extraction found none;
	// RenderArticle substitutes a placeholder derived from SourceURL.
	Title string

	// Authors lists the article authors in extraction order.
	Authors []string

	// PublishedAt is the publication date, nil when unknown.
	PublishedAt *time.Time

	// Body is the article content as Markdown.
	Body string
}

// Validate returns an error if the article is missing required fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if strings.TrimSpace(a.Body) == "" {
		return Errorf(ENOCONTENT, "article body required")
	}
	return nil
}

// DefaultTitle derives a placeholder title from a URL, for pages whose
// extraction yields no title. The last path segment is used with separators
// replaced by spaces; a URL with no path falls back to its host.
func DefaultTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.TrimSpace(rawURL)
	}

	segment := path.Base(strings.Trim(u.Path, "/"))
	if segment == "" || segment == "." {
		return u.Host
	}
	if ext := path.Ext(segment); ext != "" {
		segment = strings.TrimSuffix(segment, ext)
	}
	segment = strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	segment = strings.Join(strings.Fields(segment), " ")
	if segment == "" {
		return u.Host
	}
	return segment
}
