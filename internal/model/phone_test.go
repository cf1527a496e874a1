package model

import (
	"testing"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PhoneNumber
		wantErr bool
	}{
		{name: "plain", input: "9876543210", want: "9876543210"},
		{name: "dashed", input: "987-654-3210", want: "9876543210"},
		{name: "country code and spaces", input: "+91 98765 43210", wantErr: true},
		{name: "leading zero kept", input: "(012) 345 6789", want: "0123456789"},
		{name: "too short", input: "12345", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letters only", input: "phone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhoneNumber(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneNumber_Valid(t *testing.T) {
	assert.True(t, PhoneNumber("0000000000").Valid())
	assert.True(t, PhoneNumber("9999999999").Valid())
	assert.False(t, PhoneNumber("999999999").Valid())
	assert.False(t, PhoneNumber("99999999999").Valid())
	assert.False(t, PhoneNumber("99999x9999").Valid())
	assert.False(t, PhoneNumber("").Valid())
}

func TestPhoneNumber_Int(t *testing.T) {
	n, err := PhoneNumber("0123456789").Int()
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789), n)

	_, err = PhoneNumber("12-3").Int()
	assert.ErrorIs(t, err, common.ErrInvalidNumber)
}

func TestPhoneNumber_Format(t *testing.T) {
	assert.Equal(t, "987-654-3210", PhoneNumber("9876543210").Format())
	assert.Equal(t, "12345", PhoneNumber("12345").Format())
}

func TestVocabulary(t *testing.T) {
	seen := make(map[PatternName]bool)
	for _, p := range AllPatterns() {
		assert.False(t, seen[p], "duplicate pattern name %q", p)
		seen[p] = true
	}

	buckets := make(map[BucketName]bool)
	for _, b := range AllBuckets() {
		assert.False(t, buckets[b], "duplicate bucket name %q", b)
		buckets[b] = true
	}
	assert.True(t, buckets[BucketSuperVIP])
	assert.True(t, buckets[BucketOthers])
}

func TestMatchResult_Matched(t *testing.T) {
	r := MatchResult{
		PatternMirror:     true,
		PatternSequential: true,
		PatternRoyal:      false,
	}
	assert.Equal(t, []PatternName{PatternSequential, PatternMirror}, r.Matched())
	assert.Empty(t, MatchResult{}.Matched())
}
