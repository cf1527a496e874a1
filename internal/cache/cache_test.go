package cache

import (
	"sync"
	"testing"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClassifier struct {
	calls map[model.PhoneNumber]int
	mu    sync.Mutex
}

func (c *countingClassifier) Classify(n model.PhoneNumber) []model.PatternName {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[n]++
	return []model.PatternName{model.PatternTetra}
}

func TestClassifier_MatchesDetector(t *testing.T) {
	detector := pattern.MustNewDetector()
	cached, err := New(detector, 8)
	require.NoError(t, err)

	for _, n := range []model.PhoneNumber{"1234567890", "7777777777", "1234554321", "1234567890", "7777777777"} {
		assert.Equal(t, detector.Classify(n), cached.Classify(n), "number %s", n)
	}

	stats := cached.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(3), stats.Misses)
	assert.Equal(t, 3, stats.Len)
}

func TestClassifier_ReturnsCopies(t *testing.T) {
	cached, err := New(pattern.MustNewDetector(), 8)
	require.NoError(t, err)

	first := cached.Classify("7777777777")
	require.NotEmpty(t, first)
	want := first[0]
	first[0] = "poisoned"

	second := cached.Classify("7777777777")
	assert.Equal(t, want, second[0])
	second[0] = "poisoned again"
	assert.Equal(t, want, cached.Classify("7777777777")[0])
}

func TestClassifier_Eviction(t *testing.T) {
	next := &countingClassifier{calls: make(map[model.PhoneNumber]int)}
	cached, err := New(next, 2)
	require.NoError(t, err)

	cached.Classify("1111111111")
	cached.Classify("2222222222")
	cached.Classify("1111111111")
	cached.Classify("3333333333") // evicts 2222222222
	cached.Classify("2222222222")

	assert.Equal(t, 1, next.calls["1111111111"])
	assert.Equal(t, 2, next.calls["2222222222"])
	assert.Equal(t, 2, cached.Stats().Len)
}

func TestClassifier_InvalidNumbersBypass(t *testing.T) {
	next := &countingClassifier{calls: make(map[model.PhoneNumber]int)}
	cached, err := New(next, 2)
	require.NoError(t, err)

	assert.Nil(t, cached.Classify("123"))
	assert.Empty(t, next.calls)
	assert.Equal(t, Stats{}, cached.Stats())
}

func TestClassifier_Concurrent(t *testing.T) {
	detector := pattern.MustNewDetector()
	cached, err := New(detector, 16)
	require.NoError(t, err)

	numbers := []model.PhoneNumber{"1234567890", "7777777777", "9812121256", "1234554321"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range numbers {
				assert.Equal(t, detector.Classify(n), cached.Classify(n))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(32), cached.Stats().Hits+cached.Stats().Misses)
}

func TestNew_RequiresClassifier(t *testing.T) {
	_, err := New(nil, 1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
