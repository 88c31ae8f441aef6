package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/result"
)

type testFailure struct {
	reason string
}

func TestResult_ExactlyOneSidePopulated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		r         result.Result[testFailure, int]
		wantValue bool
	}{
		{name: "value", r: result.Value[testFailure](42), wantValue: true},
		{name: "zero value", r: result.Value[testFailure](0), wantValue: true},
		{name: "failure", r: result.Failure[testFailure, int](testFailure{reason: "offline"})},
		{name: "zero failure", r: result.Failure[testFailure, int](testFailure{})},
		{name: "zero result", r: result.Result[testFailure, int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotEqual(t, tt.r.IsFailure(), tt.r.IsValue())
			assert.Equal(t, tt.wantValue, tt.r.IsValue())

			_, hasFailure := tt.r.Failure()
			_, hasValue := tt.r.Value()
			assert.NotEqual(t, hasFailure, hasValue)

			calls := 0
			result.Fold(tt.r,
				func(testFailure) struct{} { calls++; return struct{}{} },
				func(int) struct{} { calls++; return struct{}{} },
			)
			assert.Equal(t, 1, calls, "fold must invoke exactly one branch")
		})
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	mapped := result.Map(result.Value[testFailure](7), strconv.Itoa)
	v, ok := mapped.Value()
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	called := false
	failed := result.Map(result.Failure[testFailure, int](testFailure{reason: "x"}), func(i int) string {
		called = true
		return strconv.Itoa(i)
	})
	assert.False(t, called)
	f, ok := failed.Failure()
	assert.True(t, ok)
	assert.Equal(t, testFailure{reason: "x"}, f)
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	half := func(i int) result.Result[testFailure, int] {
		if i%2 != 0 {
			return result.Failure[testFailure, int](testFailure{reason: "odd"})
		}
		return result.Value[testFailure](i / 2)
	}

	assert.Equal(t, 2, result.FlatMap(result.Value[testFailure](4), half).UnwrapOr(-1))
	assert.Equal(t, -1, result.FlatMap(result.Value[testFailure](3), half).UnwrapOr(-1))
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, result.Value[testFailure](3).UnwrapOr(10))
	assert.Equal(t, 10, result.Failure[testFailure, int](testFailure{}).UnwrapOr(10))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, result.Value[error]([]int{1, 2}).Equal(result.Value[error]([]int{1, 2})))
	assert.False(t, result.Value[error]([]int{1}).Equal(result.Value[error]([]int{2})))

	boom := errors.New("boom")
	assert.True(t, result.Failure[error, int](boom).Equal(result.Failure[error, int](boom)))
	assert.False(t, result.Failure[error, int](boom).Equal(result.Value[error](0)))
}
