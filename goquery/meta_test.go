package goquery_test

import (
	"testing"
	"time"

	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/msaum/url-doc-to-markdown/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Scanner implements urldoc.MetaScanner at compile time.
var _ urldoc.MetaScanner = (*goquery.Scanner)(nil)

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title over the title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>Hello World - Example News</title>
<meta property="og:title" content="Hello World">
</head><body></body></html>`

		meta, err := goquery.NewScanner().Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "Hello World", meta.Title)
	})

	t.Run("falls back to the title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Hello World</title></head><body></body></html>`

		meta, err := goquery.NewScanner().Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "Hello World", meta.Title)
	})

	t.Run("collects and dedupes author tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="author" content="Jane Doe">
<meta property="article:author" content="Jane Doe">
<meta name="author" content="John Smith">
</head><body></body></html>`

		meta, err := goquery.NewScanner().Scan(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Jane Doe", "John Smith"}, meta.Authors)
	})

	t.Run("skips author tags holding URLs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:author" content="https://example.com/authors/jane">
</head><body></body></html>`

		meta, err := goquery.NewScanner().Scan(html)

		require.NoError(t, err)
		assert.Empty(t, meta.Authors)
	})

	t.Run("parses article:published_time", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:published_time" content="2025-03-06T10:30:00Z">
</head><body></body></html>`

		meta, err := goquery.NewScanner().Scan(html)

		require.NoError(t, err)
		require.NotNil(t, meta.PublishedAt)
		assert.Equal(t, time.Date(2025, 3, 6, 10, 30, 0, 0, time.UTC), meta.PublishedAt.UTC())
	})

	t.Run("falls back to a time element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><time datetime="2025-03-06">March 6, 2025</time><p>Body</p></article>
</body></html>`

		meta, err := goquery.NewScanner().Scan(html)

		require.NoError(t, err)
		require.NotNil(t, meta.PublishedAt)
		assert.Equal(t, 2025, meta.PublishedAt.Year())
	})

	t.Run("leaves absent fields zero", func(t *testing.T) {
		t.Parallel()

		meta, err := goquery.NewScanner().Scan("<html><body><p>Plain page</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Authors)
		assert.Nil(t, meta.PublishedAt)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewScanner().Scan("")

		require.Error(t, err)
		assert.Equal(t, urldoc.EINVALID, urldoc.ErrorCode(err))
	})
}
