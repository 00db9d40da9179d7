// Package bloom provides a probabilistic slug index used as a negative
// cache in front of archive existence checks.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Index wraps a Bloom filter over archive slugs. A negative answer is
// definitive; a positive answer must be confirmed against the filesystem.
type Index struct {
	f *bloom.BloomFilter
}

// NewIndex creates an Index sized for n expected slugs with the given
// false positive rate.
func NewIndex(n uint, fpRate float64) *Index {
	return &Index{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a slug in the index.
func (i *Index) Add(slug string) {
	i.f.AddString(slug)
}

// MayContain reports whether slug might be in the index.
// False positives are possible; false negatives are not.
func (i *Index) MayContain(slug string) bool {
	return i.f.TestString(slug)
}

// EstimatedCount returns the approximate number of slugs in the index.
func (i *Index) EstimatedCount() uint {
	return uint(i.f.ApproximatedSize())
}
