package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/msaum/url-doc-to-markdown/fs"
	"github.com/msaum/url-doc-to-markdown/gofeed"
	urlgoquery "github.com/msaum/url-doc-to-markdown/goquery"
	"github.com/msaum/url-doc-to-markdown/htmltomarkdown"
	urlhttp "github.com/msaum/url-doc-to-markdown/http"
	"github.com/msaum/url-doc-to-markdown/pipeline"
	"github.com/msaum/url-doc-to-markdown/readability"
	"github.com/msaum/url-doc-to-markdown/rod"
	"github.com/msaum/url-doc-to-markdown/trafilatura"
	"github.com/rs/zerolog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("url2md"),
		kong.Description("Archive web articles as markdown documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input specified. Run 'url2md --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := &Config{}
	if cli.Config != "" {
		if cfg, err = LoadConfig(cli.Config); err != nil {
			return err
		}
	}

	outputDir := cli.OutputDir
	if outputDir == defaultOutputDir && cfg.OutputDir != "" {
		outputDir = cfg.OutputDir
	}
	userAgent := cli.UserAgent
	if userAgent == "" {
		userAgent = cfg.UserAgent
	}

	level := zerolog.WarnLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	var fetcher urldoc.Fetcher
	if cli.Render {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if userAgent != "" {
			opts = append(opts, rod.WithUserAgent(userAgent))
		}
		fetcher, err = rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
	} else {
		opts := []urlhttp.Option{urlhttp.WithTimeout(cli.Timeout)}
		if userAgent != "" {
			opts = append(opts, urlhttp.WithUserAgent(userAgent))
		}
		fetcher = urlhttp.NewFetcher(opts...)
	}
	defer fetcher.Close()

	var extractor urldoc.Extractor = trafilatura.NewExtractor()
	if cli.Readability {
		extractor = readability.NewExtractor()
	}

	archive, err := fs.NewArchive(outputDir)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Use --output-dir to choose a writable directory\n")
		return fmt.Errorf("failed to open archive at %q: %w", outputDir, err)
	}

	var limiter *pipeline.HostLimiter
	if cli.RPS > 0 {
		limiter = pipeline.NewHostLimiter(cli.RPS)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Pipeline: &pipeline.Pipeline{
			Normalizer: urldoc.NewNormalizer(urldoc.WithTrackingParams(cfg.TrackingParams...)),
			Fetcher:    fetcher,
			Extractor:  extractor,
			Converter:  htmltomarkdown.NewConverter(),
			Meta:       urlgoquery.NewScanner(),
			Archive:    archive,
			Limiter:    limiter,
			Logger:     logger,
		},
		Feeds:    gofeed.NewSource(feedOptions(userAgent)...),
		Sitemaps: urlhttp.NewSitemapSource(nil),
	}

	return kongCtx.Run(deps)
}

const defaultOutputDir = "articles"

func feedOptions(userAgent string) []gofeed.Option {
	if userAgent == "" {
		return nil
	}
	return []gofeed.Option{gofeed.WithUserAgent(userAgent)}
}
