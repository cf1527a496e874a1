package numerology

import (
	"testing"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		number  model.PhoneNumber
		sum     int
		single  int
		wantErr bool
	}{
		{number: "0000000000", sum: 0, single: 0},
		{number: "1234567890", sum: 45, single: 9},
		{number: "9999999999", sum: 90, single: 9},
		{number: "1000000000", sum: 1, single: 1},
		{number: "9876543219", sum: 54, single: 9},
		{number: "1111111112", sum: 11, single: 2},
		{number: "12345", wantErr: true},
		{number: "12345abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.number), func(t *testing.T) {
			p, err := Reduce(tt.number)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Profile{Number: tt.number, DigitSum: tt.sum, SingleDigitSum: tt.single}, p)
		})
	}
}

func TestFilter(t *testing.T) {
	numbers := []model.PhoneNumber{"1234567890", "1111111112", "9999999999", "bad", "2000000000"}
	sum45, single9, single2 := 45, 9, 2

	tests := []struct {
		name     string
		criteria Criteria
		want     model.PhoneNumber
		count    int
	}{
		{name: "any", criteria: Criteria{}, count: 4},
		{name: "digit sum", criteria: Criteria{DigitSum: &sum45}, want: "1234567890", count: 1},
		{name: "single digit sum", criteria: Criteria{SingleDigitSum: &single9}, count: 2},
		{name: "both", criteria: Criteria{DigitSum: &sum45, SingleDigitSum: &single2}, count: 0},
		{name: "single two", criteria: Criteria{SingleDigitSum: &single2}, count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(numbers, tt.criteria)
			assert.Len(t, got, tt.count)
			if tt.want != "" {
				require.NotEmpty(t, got)
				assert.Equal(t, tt.want, got[0].Number)
			}
		})
	}
}

func TestAvoidsUnluckyDigits(t *testing.T) {
	tests := []struct {
		number model.PhoneNumber
		want   bool
	}{
		{number: "5555555555", want: false}, // odd-position sum 25
		{number: "5111111111", want: true},  // 9
		{number: "9999555137", want: true},  // 9+9+5+5+3 = 31
		{number: "1111111111", want: false}, // no 5
		{number: "5111111112", want: false}, // contains 2
		{number: "5131313131", want: true},  // 17
		{number: "5191919191", want: false}, // 41
		{number: "123", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.number), func(t *testing.T) {
			assert.Equal(t, tt.want, AvoidsUnluckyDigits(tt.number))
		})
	}
}
