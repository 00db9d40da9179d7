package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/msaum/url-doc-to-markdown/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ urldoc.Archive = (*fs.Archive)(nil)
}

func TestNewArchive_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "articles")

	_, err := fs.NewArchive(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestArchive_WriteThenExists(t *testing.T) {
	t.Parallel()

	archive, err := fs.NewArchive(t.TempDir())
	require.NoError(t, err)

	ok, err := archive.Exists("example-com-a")
	require.NoError(t, err)
	assert.False(t, ok)

	path, err := archive.Write(context.Background(), "example-com-a", "document content")
	require.NoError(t, err)
	assert.Equal(t, archive.Path("example-com-a"), path)

	ok, err = archive.Exists("example-com-a")
	require.NoError(t, err)
	assert.True(t, ok)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "document content", string(content))
}

func TestArchive_SeedsIndexFromExistingEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "example-com-a.md"), []byte("old"), 0644))

	// A fresh Archive over the same directory must see the entry.
	archive, err := fs.NewArchive(dir)
	require.NoError(t, err)

	ok, err := archive.Exists("example-com-a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArchive_WriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive, err := fs.NewArchive(dir)
	require.NoError(t, err)

	_, err = archive.Write(context.Background(), "example-com-a", "content")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "example-com-a.md", entries[0].Name())
}

func TestArchive_WriteRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	archive, err := fs.NewArchive(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = archive.Write(ctx, "example-com-a", "content")
	require.Error(t, err)
}
