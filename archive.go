package urldoc

import "context"

// Archive persists rendered articles, one entry per slug. Entries are
// created once and never overwritten; the backing directory listing doubles
// as the deduplication ledger.
type Archive interface {
	// Exists reports whether an entry for slug is already archived.
	// The pipeline calls Exists before fetching; a hit short-circuits
	// the rest of the pipeline for that URL.
	Exists(slug string) (bool, error)

	// Write stores content under slug and returns the path of the
	// created entry. A partially written entry must never become
	// visible to a future Exists check.
	Write(ctx context.Context, slug, content string) (path string, err error)
}
