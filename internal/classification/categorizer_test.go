package classification

import (
	"context"
	"math/rand"
	"testing"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCategorize_BucketMembership(t *testing.T) {
	tests := []struct {
		name   string
		number model.PhoneNumber
		want   []model.BucketName
	}{
		{
			name:   "no rule applies",
			number: "9135792468",
			want:   []model.BucketName{model.BucketOthers},
		},
		{
			name:   "three distinct digits only",
			number: "5556667775",
			want:   []model.BucketName{model.BucketThreeDistinct},
		},
		{
			name:   "six counting promotes",
			number: "1234567890",
			want:   []model.BucketName{model.BucketSuperVIP},
		},
		{
			name:   "five digit counting run ending in zero promotes",
			number: "1236789015",
			want:   []model.BucketName{model.BucketSuperVIP},
		},
		{
			name:   "abbc halves feed the abba bucket",
			number: "9812231223",
			want:   []model.BucketName{model.BucketXYABCDABCD, model.BucketXYABBAABBA},
		},
		{
			name:   "block shape and special literal",
			number: "1231231234",
			want:   []model.BucketName{model.BucketABCABCWXYZ, model.BucketSpecial},
		},
		{
			name:   "super VIP literal",
			number: "9178678612",
			want:   []model.BucketName{model.BucketSuperVIP, model.BucketSpecial},
		},
		{
			name:   "repdigit satisfies every letter-only shape",
			number: "7777777777",
			want: []model.BucketName{
				model.BucketSuperVIP,
				model.BucketXXXX,
				model.BucketXYABCDABCD,
				model.BucketABXBABAB,
				model.BucketABCDXABCDY,
				model.BucketXYABBAABBA,
				model.BucketABCCXABCCY,
				model.BucketABCXXABCYY,
				model.BucketXYABABCDCD,
				model.BucketABCABCWXYZ,
				model.BucketABCDXYZXYZ,
				model.BucketSpecial,
				model.BucketABABDABABE,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Categorize([]model.PhoneNumber{tt.number})
			assert.Equal(t, tt.want, result.NonEmpty())
			for _, name := range tt.want {
				assert.Equal(t, []model.PhoneNumber{tt.number}, result.Buckets[name])
			}
		})
	}
}

func TestCategorize_EveryBucketPresent(t *testing.T) {
	result := Categorize(nil)
	assert.Len(t, result.Buckets, len(model.AllBuckets()))
	for _, name := range model.AllBuckets() {
		assert.NotNil(t, result.Buckets[name], "bucket %q missing", name)
		assert.Empty(t, result.Buckets[name])
	}
	assert.Empty(t, result.NonEmpty())
}

func TestCategorize_SkipsMalformed(t *testing.T) {
	numbers := []model.PhoneNumber{"123", "abcdefghij", "12345678901", "9135792468", "98765-4321"}
	result := Categorize(numbers)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 4, result.Skipped)
	for name, bucket := range result.Buckets {
		for _, n := range bucket {
			assert.True(t, n.Valid(), "malformed %q landed in %q", n, name)
		}
	}
	assert.Equal(t, []model.PhoneNumber{"9135792468"}, result.Buckets[model.BucketOthers])
}

func TestCategorize_SortedDescending(t *testing.T) {
	numbers := []model.PhoneNumber{"1111111111", "9999999999", "5555555555", "1234567890", "7777777777"}
	result := Categorize(numbers)

	assert.Equal(t,
		[]model.PhoneNumber{"9999999999", "7777777777", "5555555555", "1234567890", "1111111111"},
		result.Buckets[model.BucketSuperVIP])

	for name, bucket := range result.Buckets {
		for i := 1; i < len(bucket); i++ {
			assert.GreaterOrEqual(t, bucket[i-1], bucket[i], "bucket %q out of order", name)
		}
	}
}

func TestCategorize_DuplicatesKept(t *testing.T) {
	result := Categorize([]model.PhoneNumber{"9135792468", "9135792468"})
	assert.Len(t, result.Buckets[model.BucketOthers], 2)
}

func TestCategorizer_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	numbers := make([]model.PhoneNumber, 0, 600)
	for i := 0; i < 600; i++ {
		b := make([]byte, model.NumberLength)
		for j := range b {
			b[j] = byte('0' + rng.Intn(10))
		}
		if i%50 == 0 {
			b = b[:7]
		}
		numbers = append(numbers, model.PhoneNumber(b))
	}

	sequential, err := NewCategorizer(Options{})
	require.NoError(t, err)
	parallel, err := NewCategorizer(Options{Workers: 8})
	require.NoError(t, err)

	want, err := sequential.Categorize(context.Background(), numbers)
	require.NoError(t, err)
	got, err := parallel.Categorize(context.Background(), numbers)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Result{}, "ProcessingTime")); diff != "" {
		t.Errorf("parallel result mismatch (-sequential +parallel):\n%s", diff)
	}
	assert.Equal(t, 12, got.Skipped)
}

func TestCategorizer_Cancelled(t *testing.T) {
	for _, workers := range []int{0, 4} {
		c, err := NewCategorizer(Options{Workers: workers})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = c.Categorize(ctx, []model.PhoneNumber{"1234567890", "7777777777"})
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestCategorizer_Observer(t *testing.T) {
	var calls, last int
	c, err := NewCategorizer(Options{
		Workers: 3,
		Observer: func(done, total int) {
			calls++
			last = done
			assert.Equal(t, 4, total)
		},
	})
	require.NoError(t, err)

	_, err = c.Categorize(context.Background(), []model.PhoneNumber{"1234567890", "bad", "7777777777", "9135792468"})
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 4, last)
}

type fixedClassifier []model.PatternName

func (f fixedClassifier) Classify(model.PhoneNumber) []model.PatternName { return f }

func TestCategorizer_CustomClassifier(t *testing.T) {
	c, err := NewCategorizer(Options{Classifier: fixedClassifier{model.PatternTetra}})
	require.NoError(t, err)

	result, err := c.Categorize(context.Background(), []model.PhoneNumber{"9135792468"})
	require.NoError(t, err)
	assert.Equal(t, []model.BucketName{model.BucketXXXX}, result.NonEmpty())
	assert.Equal(t, map[model.BucketName]int{model.BucketXXXX: 1}, nonZero(result.Counts()))
}

func TestNewCategorizer_RejectsNegativeWorkers(t *testing.T) {
	_, err := NewCategorizer(Options{Workers: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func nonZero(counts map[model.BucketName]int) map[model.BucketName]int {
	out := make(map[model.BucketName]int)
	for k, v := range counts {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}
