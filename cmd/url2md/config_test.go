package main_test

import (
	"os"
	"path/filepath"
	"testing"

	main "github.com/msaum/url-doc-to-markdown/cmd/url2md"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`output_dir: /var/articles
user_agent: archiver/1.0
tracking_params:
  - ref
  - spm
`), 0644))

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "/var/articles", cfg.OutputDir)
		assert.Equal(t, "archiver/1.0", cfg.UserAgent)
		assert.Equal(t, []string{"ref", "spm"}, cfg.TrackingParams)
	})

	t.Run("returns an error for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("returns an error for malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0644))

		_, err := main.LoadConfig(path)
		assert.Error(t, err)
	})
}
