package urldoc

import "time"

// ExtractResult holds the article content extracted from an HTML page.
type ExtractResult struct {
	// Title is the article title from page metadata.
	Title string

	// Authors lists the article authors, possibly empty.
	Authors []string

	// PublishedAt is the publication date, nil when unknown.
	PublishedAt *time.Time

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts article content from HTML pages, removing boilerplate.
// Missing authors or a missing publish date are not failures; the absence
// of usable body content is reported with ENOCONTENT.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Meta holds page metadata scraped from document head tags.
type Meta struct {
	Title       string
	Authors     []string
	PublishedAt *time.Time
}

// MetaScanner reads metadata from document head tags (OpenGraph titles,
// meta author tags, article:published_time). The pipeline uses it to
// backfill fields the main content extractor missed.
type MetaScanner interface {
	Scan(html string) (*Meta, error)
}
