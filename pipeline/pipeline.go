// Package pipeline drives the archive workflow: normalize a URL, skip it if
// already archived, fetch, extract, convert, and write the rendered document.
package pipeline

import (
	"context"
	"net/url"

	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/rs/zerolog"
)

// Outcome classifies how processing ended for a single URL.
type Outcome int

const (
	OutcomeWritten Outcome = iota
	OutcomeSkipped
	OutcomeInvalid
	OutcomeFetchFailed
	OutcomeExtractFailed
	OutcomeWriteFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFetchFailed:
		return "fetch failed"
	case OutcomeExtractFailed:
		return "extract failed"
	case OutcomeWriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome represents an error.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeWritten, OutcomeSkipped:
		return false
	default:
		return true
	}
}

// Report describes the result of processing one URL.
type Report struct {
	URL     string
	Slug    string
	Path    string
	Outcome Outcome
	Err     error
}

// Result aggregates the reports of a batch run.
type Result struct {
	Written int
	Skipped int
	Failed  int
	Reports []Report
}

// ProgressFunc receives a Report after each URL is processed.
type ProgressFunc func(Report)

// Pipeline wires the stages of the archive workflow together. Fields with
// interface types are required unless noted otherwise.
type Pipeline struct {
	Normalizer *urldoc.Normalizer
	Fetcher    urldoc.Fetcher
	Extractor  urldoc.Extractor
	Converter  urldoc.Converter
	Archive    urldoc.Archive

	// Meta, when set, backfills title, authors, and date that the
	// extractor could not determine.
	Meta urldoc.MetaScanner

	// Limiter, when set, throttles fetches per host.
	Limiter *HostLimiter

	// Logger defaults to a no-op logger when left zero.
	Logger zerolog.Logger
}

// ProcessURL runs a single URL through the full workflow. The returned Report
// always carries the normalized URL when normalization succeeded, and the
// archive path when a document was written.
func (p *Pipeline) ProcessURL(ctx context.Context, rawURL string) Report {
	normalized, err := p.Normalizer.Normalize(rawURL)
	if err != nil {
		p.Logger.Warn().Str("url", rawURL).Err(err).Msg("invalid url")
		return Report{URL: rawURL, Outcome: OutcomeInvalid, Err: err}
	}
	slug := p.Normalizer.Slug(normalized)

	report := Report{URL: normalized, Slug: slug}

	exists, err := p.Archive.Exists(slug)
	if err != nil {
		report.Outcome = OutcomeWriteFailed
		report.Err = err
		return report
	}
	if exists {
		p.Logger.Debug().Str("url", normalized).Msg("already archived")
		report.Outcome = OutcomeSkipped
		return report
	}

	if p.Limiter != nil {
		host := hostOf(normalized)
		if err := p.Limiter.Wait(ctx, host); err != nil {
			report.Outcome = OutcomeFetchFailed
			report.Err = err
			return report
		}
	}

	rawHTML, err := p.Fetcher.Fetch(ctx, normalized)
	if err != nil {
		p.Logger.Warn().Str("url", normalized).Err(err).Msg("fetch failed")
		report.Outcome = OutcomeFetchFailed
		report.Err = err
		return report
	}

	extracted, err := p.Extractor.Extract(rawHTML)
	if err != nil {
		p.Logger.Warn().Str("url", normalized).Err(err).Msg("extraction failed")
		report.Outcome = OutcomeExtractFailed
		report.Err = err
		return report
	}

	body, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		report.Outcome = OutcomeExtractFailed
		report.Err = err
		return report
	}

	article := &urldoc.Article{
		SourceURL:   normalized,
		Title:       extracted.Title,
		Authors:     extracted.Authors,
		PublishedAt: extracted.PublishedAt,
		Body:        body,
	}
	p.backfillMeta(article, rawHTML)
	if article.Title == "" {
		article.Title = urldoc.DefaultTitle(normalized)
	}

	if err := article.Validate(); err != nil {
		report.Outcome = OutcomeExtractFailed
		report.Err = err
		return report
	}

	path, err := p.Archive.Write(ctx, slug, urldoc.RenderArticle(article))
	if err != nil {
		p.Logger.Error().Str("url", normalized).Err(err).Msg("write failed")
		report.Outcome = OutcomeWriteFailed
		report.Err = err
		return report
	}

	p.Logger.Info().Str("url", normalized).Str("path", path).Msg("archived")
	report.Path = path
	report.Outcome = OutcomeWritten
	return report
}

// backfillMeta fills fields the extractor left empty from page metadata.
func (p *Pipeline) backfillMeta(article *urldoc.Article, rawHTML string) {
	if p.Meta == nil {
		return
	}
	if article.Title != "" && len(article.Authors) > 0 && article.PublishedAt != nil {
		return
	}

	meta, err := p.Meta.Scan(rawHTML)
	if err != nil {
		p.Logger.Debug().Err(err).Msg("meta scan failed")
		return
	}
	if article.Title == "" {
		article.Title = meta.Title
	}
	if len(article.Authors) == 0 {
		article.Authors = meta.Authors
	}
	if article.PublishedAt == nil {
		article.PublishedAt = meta.PublishedAt
	}
}

// ProcessBatch processes URLs one at a time, continuing past per-URL failures.
// It stops early only when the context is canceled.
func (p *Pipeline) ProcessBatch(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report := p.ProcessURL(ctx, u)
		result.Reports = append(result.Reports, report)
		switch {
		case report.Outcome == OutcomeWritten:
			result.Written++
		case report.Outcome == OutcomeSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
		if progress != nil {
			progress(report)
		}
	}
	return result, nil
}

// ProcessMarkdown discovers URLs in markdown text and processes them as a
// batch.
func (p *Pipeline) ProcessMarkdown(ctx context.Context, text string, progress ProgressFunc) (*Result, error) {
	return p.ProcessBatch(ctx, DiscoverURLs(text), progress)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
