package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestInterruptHandler(t *testing.T) {
	t.Run("nil writer falls back to stderr", func(t *testing.T) {
		h := NewInterruptHandler(nil)
		assert.NotNil(t, h.writer)
		assert.False(t, h.WasInterrupted())
	})

	t.Run("interrupt is reported once", func(t *testing.T) {
		out := &syncBuffer{}
		h := NewInterruptHandler(out)
		ctx := h.HandleInterrupts(context.Background())
		defer h.Stop()

		require.NoError(t, ctx.Err())
		h.markInterrupted()
		h.markInterrupted()

		assert.True(t, h.WasInterrupted())
		assert.Equal(t, 1, bytes.Count([]byte(out.String()), []byte("interrupted")))
	})

	t.Run("stop cancels and is idempotent", func(t *testing.T) {
		h := NewInterruptHandler(&syncBuffer{})
		ctx := h.HandleInterrupts(context.Background())
		h.Stop()
		h.Stop()

		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
		assert.False(t, h.WasInterrupted())
	})

	t.Run("stop before handle is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() { NewInterruptHandler(nil).Stop() })
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatError("boom"), "boom")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatInfo("fyi"), "fyi")
	assert.Contains(t, FormatTitle("Buckets"), "Buckets")
	assert.Contains(t, FormatNumber("9876543210"), "987-654-3210")
	assert.Contains(t, RenderBox("Summary", "42 numbers"), "42 numbers")
}

func TestFormatBadges(t *testing.T) {
	d := pattern.MustNewDetector()

	names := d.Classify("1234554321")
	rendered := FormatBadges(d, names)
	for _, name := range names {
		assert.Contains(t, rendered, string(name))
	}

	assert.Contains(t, FormatBadges(d, nil), "no patterns")
	assert.Contains(t, FormatBadge("Custom", "unknown-family"), "Custom")
	assert.Contains(t, FormatBadges(d, []model.PatternName{"Not In Catalog"}), "Not In Catalog")
}

func TestNewProgress(t *testing.T) {
	out := &syncBuffer{}
	observe := NewProgress(out, 3, "Categorizing")
	for i := 1; i <= 3; i++ {
		observe(i, 3)
	}
	assert.Contains(t, out.String(), "Categorizing")
	assert.Contains(t, out.String(), "3/3")
}
