// Package fs provides the filesystem-backed article archive.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/msaum/url-doc-to-markdown/bloom"
)

// entryExt is the file extension of archived articles.
const entryExt = ".md"

// minIndexCapacity keeps the negative-cache index usable for empty or
// near-empty archives.
const minIndexCapacity = 4096

// Ensure Archive implements urldoc.Archive at compile time.
var _ urldoc.Archive = (*Archive)(nil)

// Archive stores one markdown file per article slug in a directory. The
// directory listing is the deduplication ledger; a Bloom index seeded from
// it acts as a negative cache so misses skip the stat call.
type Archive struct {
	dir   string
	index *bloom.Index
}

// NewArchive opens the archive directory, creating it if needed, and seeds
// the slug index from its listing. An unusable directory is fatal for the
// whole run.
func NewArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating archive directory %q: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading archive directory %q: %w", dir, err)
	}

	capacity := uint(len(entries) * 2)
	if capacity < minIndexCapacity {
		capacity = minIndexCapacity
	}
	index := bloom.NewIndex(capacity, 0.001)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), entryExt) {
			continue
		}
		index.Add(strings.TrimSuffix(entry.Name(), entryExt))
	}

	return &Archive{dir: dir, index: index}, nil
}

// Dir returns the archive directory path.
func (a *Archive) Dir() string { return a.dir }

// Path returns the file path an entry for slug is stored at.
func (a *Archive) Path(slug string) string {
	return filepath.Join(a.dir, slug+entryExt)
}

// Exists reports whether an entry for slug is already archived. A negative
// index answer is trusted; a positive one is confirmed with a stat call, so
// index false positives never cause an article to be skipped.
func (a *Archive) Exists(slug string) (bool, error) {
	if !a.index.MayContain(slug) {
		return false, nil
	}

	_, err := os.Stat(a.Path(slug))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Write stores content under slug. Content goes to a uniquely named
// temporary file first and is renamed into place, so a partial write never
// becomes visible as an archived entry.
func (a *Archive) Write(ctx context.Context, slug, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return "", fmt.Errorf("creating archive directory %q: %w", a.dir, err)
	}

	final := a.Path(slug)
	tmp := final + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("renaming %q: %w", final, err)
	}

	a.index.Add(slug)
	return final, nil
}
