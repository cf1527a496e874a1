// Package cache memoizes classification results for callers that look up the
// same numbers repeatedly.
package cache

import (
	"fmt"
	"sync/atomic"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 4096

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// Classifier wraps another classifier with a bounded LRU.
// It is safe for concurrent use.
type Classifier struct {
	next    pattern.Classifier
	entries *lru.Cache[model.PhoneNumber, []model.PatternName]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

var _ pattern.Classifier = (*Classifier)(nil)

// New creates a memoizing classifier holding up to size numbers.
func New(next pattern.Classifier, size int) (*Classifier, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: classifier is required", common.ErrInvalidArgument)
	}
	if size <= 0 {
		size = DefaultSize
	}

	entries, err := lru.New[model.PhoneNumber, []model.PatternName](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &Classifier{next: next, entries: entries}, nil
}

// Classify returns the cached result for n, computing it on a miss. The returned
// slice is a copy and may be modified by the caller.
func (c *Classifier) Classify(n model.PhoneNumber) []model.PatternName {
	if !n.Valid() {
		return nil
	}

	if names, ok := c.entries.Get(n); ok {
		c.hits.Add(1)
		return clone(names)
	}

	c.misses.Add(1)
	names := c.next.Classify(n)
	c.entries.Add(n, clone(names))
	return names
}

// Stats returns hit and miss counts and the current entry count.
func (c *Classifier) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.entries.Len(),
	}
}

func clone(names []model.PatternName) []model.PatternName {
	if names == nil {
		return nil
	}
	out := make([]model.PatternName, len(names))
	copy(out, names)
	return out
}
