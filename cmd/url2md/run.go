package main

import (
	"fmt"
	"os"

	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/msaum/url-doc-to-markdown/pipeline"
)

// Run executes the archive workflow for the given input.
func (c *CLI) Run(deps *Dependencies) error {
	switch {
	case c.Feed:
		return c.runSource(deps, deps.Feeds)
	case c.Sitemap:
		return c.runSource(deps, deps.Sitemaps)
	}

	// A readable file is a markdown reading list; anything else is a URL.
	if info, err := os.Stat(c.Input); err == nil && !info.IsDir() {
		text, err := os.ReadFile(c.Input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", c.Input, err)
		}

		result, err := deps.Pipeline.ProcessMarkdown(deps.Ctx, string(text), c.printReport(deps))
		if err != nil {
			return err
		}
		c.printSummary(deps, result)
		return nil
	}

	report := deps.Pipeline.ProcessURL(deps.Ctx, c.Input)
	c.printReport(deps)(report)
	if report.Outcome.Failed() {
		return fmt.Errorf("%s: %s", report.Outcome, urldoc.ErrorMessage(report.Err))
	}
	return nil
}

// runSource expands the input through a URL source, then processes the batch.
func (c *CLI) runSource(deps *Dependencies, source urldoc.URLSource) error {
	urls, err := source.Discover(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urldoc.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No article URLs found.")
		return nil
	}

	result, err := deps.Pipeline.ProcessBatch(deps.Ctx, urls, c.printReport(deps))
	if err != nil {
		return err
	}
	c.printSummary(deps, result)
	return nil
}

func (c *CLI) printReport(deps *Dependencies) pipeline.ProgressFunc {
	return func(r pipeline.Report) {
		switch r.Outcome {
		case pipeline.OutcomeWritten:
			fmt.Fprintf(deps.Stdout, "archived  %s -> %s\n", r.URL, r.Path)
		case pipeline.OutcomeSkipped:
			fmt.Fprintf(deps.Stdout, "skipped   %s\n", r.URL)
		default:
			fmt.Fprintf(deps.Stderr, "%s  %s: %s\n", r.Outcome, r.URL, urldoc.ErrorMessage(r.Err))
		}
	}
}

func (c *CLI) printSummary(deps *Dependencies, result *pipeline.Result) {
	fmt.Fprintf(deps.Stdout, "Done: %d archived, %d skipped, %d failed\n",
		result.Written, result.Skipped, result.Failed)
}
