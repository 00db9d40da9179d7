package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	urldoc "github.com/msaum/url-doc-to-markdown"
)

// maxSitemapDepth bounds recursion through nested <sitemapindex> documents.
const maxSitemapDepth = 3

// Ensure SitemapSource implements urldoc.URLSource at compile time.
var _ urldoc.URLSource = (*SitemapSource)(nil)

// SitemapSource expands an XML sitemap URL into the page URLs it lists.
// Both <urlset> documents and nested <sitemapindex> documents are handled.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a SitemapSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client}
}

// Discover fetches the sitemap at ref and returns the listed page URLs in
// document order, deduplicated.
func (s *SitemapSource) Discover(ctx context.Context, ref string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	err := s.walk(ctx, ref, 0, func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	})
	if err != nil {
		return nil, err
	}

	return urls, nil
}

// walk parses one sitemap document, emitting page URLs and recursing into
// child sitemaps up to maxSitemapDepth.
func (s *SitemapSource) walk(ctx context.Context, sitemapURL string, depth int, emit func(string)) error {
	if depth > maxSitemapDepth {
		return nil
	}

	body, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return urldoc.Errorf(urldoc.EINVALID, "sitemap %s has no root element", sitemapURL)
	}

	switch root.Tag {
	case "urlset":
		for _, el := range root.SelectElements("url") {
			if loc := locText(el); loc != "" {
				emit(loc)
			}
		}
	case "sitemapindex":
		for _, el := range root.SelectElements("sitemap") {
			loc := locText(el)
			if loc == "" {
				continue
			}
			if err := s.walk(ctx, loc, depth+1, emit); err != nil {
				return err
			}
		}
	default:
		return urldoc.Errorf(urldoc.EINVALID, "sitemap %s: unexpected root element <%s>", sitemapURL, root.Tag)
	}

	return nil
}

// locText extracts the trimmed <loc> child text of an element.
func locText(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}

// fetch retrieves a sitemap document body.
func (s *SitemapSource) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, urldoc.Errorf(urldoc.EUNAVAILABLE, "fetching sitemap %s: %v", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, urldoc.Errorf(urldoc.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
