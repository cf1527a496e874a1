package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	base := fmt.Errorf("%w: 12345", ErrInvalidNumber)
	err := NewUserError("Could not read number", base)

	assert.Equal(t, "Could not read number: invalid phone number: 12345", err.Error())
	assert.ErrorIs(t, err, ErrInvalidNumber)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "Could not read number", userErr.UserMessage)

	bare := NewUserError("nothing to do", nil)
	assert.Equal(t, "nothing to do", bare.Error())
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "invalid argument", err: fmt.Errorf("sum: %w", ErrInvalidArgument), want: true},
		{name: "invalid number", err: ErrInvalidNumber, want: true},
		{name: "unknown pattern", err: ErrUnknownPattern, want: true},
		{name: "no numbers", err: NewUserError("empty", ErrNoNumbers), want: true},
		{name: "config", err: ErrInvalidConfig, want: false},
		{name: "other", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInputError(tt.err))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	handler, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.New(handler).Info("categorized", "total", 3)
	assert.Contains(t, buf.String(), `"total":3`)

	buf.Reset()
	handler, err = NewHandler(&buf, slog.LevelInfo, "console")
	require.NoError(t, err)
	slog.New(handler).Debug("hidden")
	assert.Empty(t, buf.String())

	_, err = NewHandler(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogHelpers(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	handler, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.SetDefault(slog.New(handler))

	LogInfo("Categorizing numbers", Fields{"count": 3})
	assert.Contains(t, buf.String(), `"msg":"Categorizing numbers"`)
	assert.Contains(t, buf.String(), `"count":3`)

	buf.Reset()
	LogDebug("categorized numbers", Fields{"total": 3})
	assert.Empty(t, buf.String())

	buf.Reset()
	LogError(errors.New("write failed"), "Failed to update progress bar", Fields{"done": 2})
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"write failed"`)
	assert.Contains(t, buf.String(), `"done":2`)
}
