package main

import (
	"context"
	"io"
	"time"

	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/msaum/url-doc-to-markdown/pipeline"
)

// Dependencies holds the wired pipeline and URL sources for command
// execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *pipeline.Pipeline
	Feeds    urldoc.URLSource
	Sitemaps urldoc.URLSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input string `arg:"" help:"URL to archive, or path to a markdown file of URLs"`

	OutputDir   string        `short:"o" default:"articles" help:"Directory where article documents are written"`
	Timeout     time.Duration `default:"15s" help:"Per-request fetch timeout"`
	UserAgent   string        `help:"Override the User-Agent header"`
	Render      bool          `help:"Fetch with a headless browser for JavaScript-heavy pages"`
	Readability bool          `help:"Use the readability extractor instead of trafilatura"`
	RPS         float64       `name:"rps" default:"1" help:"Max requests per second per host (0 disables throttling)"`
	Feed        bool          `help:"Treat the input as an RSS/Atom feed URL"`
	Sitemap     bool          `help:"Treat the input as a sitemap URL"`
	Config      string        `short:"c" type:"path" help:"Path to a YAML config file"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
