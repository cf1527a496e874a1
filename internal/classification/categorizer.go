// Package classification partitions batches of phone numbers into named buckets.
package classification

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/digits"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"golang.org/x/sync/errgroup"
)

// Observer receives progress as numbers are classified. It may be called from
// several goroutines, but never concurrently.
type Observer func(done, total int)

// Options configures a Categorizer.
type Options struct {
	// Classifier tags each number. Defaults to the built-in catalog.
	Classifier pattern.Classifier
	Observer   Observer
	// Workers bounds the classification fan-out. Values below 2 run sequentially.
	Workers int
}

// Result holds the buckets produced by one Categorize call.
type Result struct {
	Buckets        map[model.BucketName][]model.PhoneNumber
	Total          int
	Skipped        int
	ProcessingTime time.Duration
}

// Counts returns the size of every bucket.
func (r Result) Counts() map[model.BucketName]int {
	counts := make(map[model.BucketName]int, len(r.Buckets))
	for name, numbers := range r.Buckets {
		counts[name] = len(numbers)
	}
	return counts
}

// NonEmpty returns the names of non-empty buckets in display order.
func (r Result) NonEmpty() []model.BucketName {
	var names []model.BucketName
	for _, name := range model.AllBuckets() {
		if len(r.Buckets[name]) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// bucketFeeds maps pattern-fed buckets to the patterns that feed them.
var bucketFeeds = []struct {
	bucket   model.BucketName
	patterns []model.PatternName
}{
	{model.BucketXXXX, []model.PatternName{model.PatternTetra}},
	{model.BucketX00XY00Y, []model.PatternName{model.PatternX00XY00Y}},
	{model.BucketXYABCDABCD, []model.PatternName{model.PatternXYABCDABCD}},
	{model.BucketABXBABAB, []model.PatternName{
		model.PatternABCDCDCXCD, model.PatternABCDCDXDCD, model.PatternABCDXDCDCD, model.PatternABCDABCDXY,
	}},
	{model.BucketABCDXABCDY, []model.PatternName{model.PatternABCDXABCDY}},
	{model.BucketXYABBAABBA, []model.PatternName{model.PatternXYABBAABBA}},
	{model.BucketABCCXABCCY, []model.PatternName{model.PatternABCCXABCCY}},
	{model.BucketABCXXABCYY, []model.PatternName{model.PatternABCXXABCYY}},
	{model.BucketXYA0B0C0D0, []model.PatternName{model.PatternXYA0B0C0D0}},
	{model.BucketXYABABCDCD, []model.PatternName{model.PatternXYABABCDCD}},
	{model.BucketABCABCWXYZ, []model.PatternName{model.PatternABCABCWXYZ}},
	{model.BucketABCDXYZXYZ, []model.PatternName{model.PatternABCDXYZXYZ}},
	{model.BucketSpecial, []model.PatternName{model.PatternSpecial}},
	{model.BucketABABDABABE, []model.PatternName{model.PatternABABDABABE}},
}

// superVIPPatterns promote a number to Super VIP when matched.
var superVIPPatterns = []model.PatternName{model.PatternXXXZXXX, model.PatternSixCounting}

// superVIPLiterals promote a number to Super VIP when present as a substring.
var superVIPLiterals = []string{"786786", "143143", "000000"}

const (
	superVIPMaxDistinct  = 2
	superVIPMinFrequency = 7
	threeDistinct        = 3
)

// Categorizer assigns numbers to buckets.
type Categorizer struct {
	classifier pattern.Classifier
	observer   Observer
	workers    int
}

// NewCategorizer creates a categorizer from opts.
func NewCategorizer(opts Options) (*Categorizer, error) {
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative, got %d", common.ErrInvalidArgument, opts.Workers)
	}

	classifier := opts.Classifier
	if classifier == nil {
		d, err := pattern.NewDetector()
		if err != nil {
			return nil, fmt.Errorf("failed to build detector: %w", err)
		}
		classifier = d
	}

	return &Categorizer{
		classifier: classifier,
		observer:   opts.Observer,
		workers:    opts.Workers,
	}, nil
}

var (
	defaultOnce        sync.Once
	defaultCategorizer *Categorizer
)

// Categorize buckets numbers with the default catalog, sequentially.
func Categorize(numbers []model.PhoneNumber) Result {
	defaultOnce.Do(func() {
		defaultCategorizer = &Categorizer{classifier: pattern.MustNewDetector()}
	})
	// A background context never cancels, so the sequential path cannot fail.
	result, _ := defaultCategorizer.Categorize(context.Background(), numbers)
	return result
}

// Categorize assigns every valid number to its buckets and sorts each bucket in
// descending numeric order. Malformed numbers are counted as skipped.
func (c *Categorizer) Categorize(ctx context.Context, numbers []model.PhoneNumber) (Result, error) {
	start := time.Now()

	assignments, err := c.assign(ctx, numbers)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Buckets: make(map[model.BucketName][]model.PhoneNumber, len(model.AllBuckets())),
		Total:   len(numbers),
	}
	for _, name := range model.AllBuckets() {
		result.Buckets[name] = []model.PhoneNumber{}
	}

	for i, buckets := range assignments {
		if buckets == nil {
			result.Skipped++
			continue
		}
		for _, name := range buckets {
			result.Buckets[name] = append(result.Buckets[name], numbers[i])
		}
	}

	for _, bucket := range result.Buckets {
		sortDescending(bucket)
	}
	result.ProcessingTime = time.Since(start)

	common.LogDebug("categorized numbers", common.Fields{
		"total":             result.Total,
		"skipped":           result.Skipped,
		"non_empty_buckets": len(result.NonEmpty()),
		"duration":          result.ProcessingTime,
	})

	return result, nil
}

// assign computes the buckets of each input position. Skipped numbers get nil.
func (c *Categorizer) assign(ctx context.Context, numbers []model.PhoneNumber) ([][]model.BucketName, error) {
	out := make([][]model.BucketName, len(numbers))
	progress := c.progress(len(numbers))

	if c.workers < 2 {
		for i, n := range numbers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = c.bucketsFor(n)
			progress()
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, n := range numbers {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = c.bucketsFor(n)
			progress()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx on return; surface a parent cancellation that raced the last task.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Categorizer) progress(total int) func() {
	if c.observer == nil {
		return func() {}
	}
	var (
		mu   sync.Mutex
		done int
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		c.observer(done, total)
	}
}

// bucketsFor returns every bucket n belongs to, in display order, or nil when n
// is malformed.
func (c *Categorizer) bucketsFor(n model.PhoneNumber) []model.BucketName {
	if !n.Valid() {
		return nil
	}

	distinct, err := digits.Distinct(string(n))
	if err != nil {
		return nil
	}
	maxFreq, err := digits.MaxFrequency(string(n))
	if err != nil {
		return nil
	}

	matched := make(model.MatchResult)
	for _, name := range c.classifier.Classify(n) {
		matched[name] = true
	}

	member := make(map[model.BucketName]bool)
	if distinct <= superVIPMaxDistinct || maxFreq >= superVIPMinFrequency || hasAny(matched, superVIPPatterns) {
		member[model.BucketSuperVIP] = true
	}
	for _, lit := range superVIPLiterals {
		if strings.Contains(string(n), lit) {
			member[model.BucketSuperVIP] = true
		}
	}
	if distinct == threeDistinct {
		member[model.BucketThreeDistinct] = true
	}
	for _, feed := range bucketFeeds {
		if hasAny(matched, feed.patterns) {
			member[feed.bucket] = true
		}
	}
	if len(member) == 0 {
		member[model.BucketOthers] = true
	}

	buckets := make([]model.BucketName, 0, len(member))
	for _, name := range model.AllBuckets() {
		if member[name] {
			buckets = append(buckets, name)
		}
	}
	return buckets
}

func hasAny(matched model.MatchResult, names []model.PatternName) bool {
	for _, name := range names {
		if matched[name] {
			return true
		}
	}
	return false
}

// sortDescending orders ten-digit numbers by descending value. Equal-length
// digit strings compare the same lexically and numerically.
func sortDescending(numbers []model.PhoneNumber) {
	sort.SliceStable(numbers, func(i, j int) bool {
		return numbers[i] > numbers[j]
	})
}
