// Package urldoc archives web articles as markdown documents. It fetches a
// page (or a batch of pages referenced from a markdown file, an RSS/Atom
// feed, or an XML sitemap), extracts the article content, and writes one
// formatted document per article to an output directory, skipping articles
// that are already archived. The output directory listing is the only
// persistent state and doubles as the deduplication ledger.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, gofeed/, fs/).
package urldoc
