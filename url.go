package urldoc

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MaxSlugLength bounds slug length to stay well under common filesystem
// filename limits, leaving room for the hash suffix and file extension.
const MaxSlugLength = 150

// DefaultTrackingParams returns the default deny-list of query parameters
// stripped during normalization. These parameters identify campaigns and
// clicks, not content, so two URLs differing only in them are the same
// article.
func DefaultTrackingParams() []string {
	return []string{
		"utm_source", "utm_medium", "utm_campaign", "utm_term",
		"utm_content", "utm_id",
		"gclid", "fbclid", "yclid", "igshid",
		"mc_cid", "mc_eid",
	}
}

// Normalizer canonicalizes raw URL strings and derives deterministic,
// filesystem-safe slugs from them. Both operations are pure functions of
// their input. Use NewNormalizer to construct one.
type Normalizer struct {
	deny map[string]bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithTrackingParams extends the default deny-list with additional query
// parameter names to strip during normalization.
func WithTrackingParams(params ...string) NormalizerOption {
	return func(n *Normalizer) {
		for _, p := range params {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				n.deny[p] = true
			}
		}
	}
}

// NewNormalizer creates a Normalizer with the default tracking parameter
// deny-list.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{deny: make(map[string]bool)}
	for _, p := range DefaultTrackingParams() {
		n.deny[p] = true
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize canonicalizes a raw URL string: trims whitespace, lowercases
// the scheme and host, drops the fragment, strips deny-listed query
// parameters, re-encodes the remaining query in sorted order, and trims a
// trailing slash from the path. Returns EINVALID for empty or malformed
// input and for non-http(s) schemes.
func (n *Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "empty URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "malformed URL %q: %v", raw, err)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", raw)
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	q := u.Query()
	for key := range q {
		if n.deny[strings.ToLower(key)] {
			q.Del(key)
		}
	}
	// Encode sorts keys, so parameter order never affects identity.
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Slug derives a filesystem-safe identifier from a normalized URL: the
// scheme is dropped, non-alphanumeric runs collapse to a single hyphen, and
// the result is truncated to MaxSlugLength. Truncation appends an xxhash
// suffix of the full URL so two distinct long URLs sharing a prefix cannot
// collide.
func (n *Normalizer) Slug(normalized string) string {
	s := strings.ToLower(normalized)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")

	var b strings.Builder
	b.Grow(len(s))
	hyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "article"
	}
	if len(slug) <= MaxSlugLength {
		return slug
	}

	hash := xxhash.Sum64String(normalized)
	return fmt.Sprintf("%s-%016x", strings.TrimRight(slug[:MaxSlugLength], "-"), hash)
}
