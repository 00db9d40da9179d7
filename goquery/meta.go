// Package goquery provides a head-tag metadata scanner used to backfill
// article fields the main content extractor missed.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	urldoc "github.com/msaum/url-doc-to-markdown"
)

// Ensure Scanner implements urldoc.MetaScanner at compile time.
var _ urldoc.MetaScanner = (*Scanner)(nil)

// Scanner reads title, author, and publication date hints from document
// head tags (OpenGraph properties, meta author tags, time elements).
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan parses raw HTML and returns whatever metadata the document head
// declares. Absent fields are left zero; Scan fails only on unparseable
// input.
func (s *Scanner) Scan(rawHTML string) (*urldoc.Meta, error) {
	if rawHTML == "" {
		return nil, urldoc.Errorf(urldoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	meta := &urldoc.Meta{
		Title:   scanTitle(doc),
		Authors: scanAuthors(doc),
	}

	if raw := scanDate(doc); raw != "" {
		if parsed, err := dateparse.ParseAny(raw); err == nil {
			meta.PublishedAt = &parsed
		}
	}

	return meta, nil
}

func scanTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func scanAuthors(doc *goquery.Document) []string {
	var authors []string
	seen := make(map[string]bool)

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			return
		}
		seen[strings.ToLower(name)] = true
		authors = append(authors, name)
	}

	doc.Find(`meta[name="author"], meta[property="article:author"]`).Each(func(_ int, sel *goquery.Selection) {
		if content, ok := sel.Attr("content"); ok {
			// Author tags sometimes hold URLs rather than names.
			if !strings.HasPrefix(content, "http://") && !strings.HasPrefix(content, "https://") {
				add(content)
			}
		}
	})

	return authors
}

func scanDate(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="article:published_time"]`).Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	if datetime, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		return strings.TrimSpace(datetime)
	}
	return ""
}
