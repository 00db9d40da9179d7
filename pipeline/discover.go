package pipeline

import (
	"regexp"
	"strings"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)\)`)
	bareURLRe      = regexp.MustCompile(`https?://[^\s<>"')\]]+`)
)

// DiscoverURLs extracts http(s) URLs from markdown text. It recognizes both
// markdown link targets and bare URLs, returning them in order of first
// appearance with duplicates removed.
func DiscoverURLs(text string) []string {
	type match struct {
		pos int
		url string
	}
	var matches []match

	for _, m := range markdownLinkRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, match{pos: m[2], url: text[m[2]:m[3]]})
	}
	for _, m := range bareURLRe.FindAllStringIndex(text, -1) {
		// Skip bare matches inside a markdown link target; the link
		// pass already captured those.
		inside := false
		for _, prev := range matches {
			if m[0] >= prev.pos && m[0] < prev.pos+len(prev.url) {
				inside = true
				break
			}
		}
		if !inside {
			matches = append(matches, match{pos: m[0], url: text[m[0]:m[1]]})
		}
	}

	// Restore document order after merging the two passes.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].pos < matches[j-1].pos; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	seen := make(map[string]bool)
	var urls []string
	for _, m := range matches {
		u := strings.TrimRight(m.url, ".,;:!?")
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			continue
		}
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}

	return urls
}
