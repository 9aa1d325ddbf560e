package numberset

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type testcase struct {
		name           string
		input          []int32
		expectedKind   error
		expectedValues []int32
	}
	testcases := []testcase{
		{
			name:  "valid selection",
			input: []int32{7, 14, 21, 28, 35},
		},
		{
			name:  "valid selection in pick order",
			input: []int32{35, 7, 28, 14, 21},
		},
		{
			name:  "valid boundary values",
			input: []int32{1, 2, 3, 4, 49},
		},
		{
			name:         "too few numbers",
			input:        []int32{1, 2, 3, 4},
			expectedKind: ErrWrongCardinality,
		},
		{
			name:         "too many numbers",
			input:        []int32{1, 2, 3, 4, 5, 6},
			expectedKind: ErrWrongCardinality,
		},
		{
			name:         "empty selection",
			input:        []int32{},
			expectedKind: ErrWrongCardinality,
		},
		{
			name:           "below range",
			input:          []int32{0, 2, 3, 4, 5},
			expectedKind:   ErrOutOfRange,
			expectedValues: []int32{0},
		},
		{
			name:           "above range",
			input:          []int32{1, 2, 3, 4, 50},
			expectedKind:   ErrOutOfRange,
			expectedValues: []int32{50},
		},
		{
			name:           "negative number",
			input:          []int32{-7, 2, 3, 4, 5},
			expectedKind:   ErrOutOfRange,
			expectedValues: []int32{-7},
		},
		{
			name:           "multiple out of range",
			input:          []int32{0, 2, 3, 4, 99},
			expectedKind:   ErrOutOfRange,
			expectedValues: []int32{0, 99},
		},
		{
			name:           "duplicate numbers",
			input:          []int32{7, 7, 21, 28, 35},
			expectedKind:   ErrDuplicateWithinSelection,
			expectedValues: []int32{7},
		},
		{
			name:         "cardinality reported before range",
			input:        []int32{0, 99},
			expectedKind: ErrWrongCardinality,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if tc.expectedKind == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedKind)
			if tc.expectedValues != nil {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.ElementsMatch(t, tc.expectedValues, vErr.Values())
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("preserves pick order", func(t *testing.T) {
		set, err := New([]int32{35, 7, 28, 14, 21})
		require.NoError(t, err)
		assert.Equal(t, []int32{35, 7, 28, 14, 21}, set.Slice())
	})

	t.Run("rejects invalid selection", func(t *testing.T) {
		_, err := New([]int32{1, 2, 3})
		assert.ErrorIs(t, err, ErrWrongCardinality)
	})
}

func TestCanonical(t *testing.T) {
	set, err := New([]int32{35, 7, 28, 14, 21})
	require.NoError(t, err)

	assert.Equal(t, NumberSet{7, 14, 21, 28, 35}, set.Canonical())
	assert.Equal(t, "7,14,21,28,35", set.CanonicalString())

	// canonicalization does not mutate the original
	assert.Equal(t, []int32{35, 7, 28, 14, 21}, set.Slice())
}

func TestMatchCount(t *testing.T) {
	winning := NumberSet{7, 14, 21, 28, 35}

	type testcase struct {
		name     string
		other    NumberSet
		expected int
	}
	testcases := []testcase{
		{name: "no matches", other: NumberSet{1, 2, 3, 4, 5}, expected: 0},
		{name: "two matches", other: NumberSet{7, 14, 2, 3, 4}, expected: 2},
		{name: "all matches regardless of order", other: NumberSet{35, 28, 21, 14, 7}, expected: 5},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, winning.MatchCount(tc.other))
		})
	}
}

func TestSameCombination(t *testing.T) {
	a := NumberSet{2, 4, 6, 8, 10}
	b := NumberSet{10, 8, 6, 4, 2}
	c := NumberSet{2, 4, 6, 8, 11}

	assert.True(t, a.SameCombination(b))
	assert.False(t, a.SameCombination(c))
}

func TestCheckAgainstUsed(t *testing.T) {
	used := []NumberSet{
		{2, 4, 6, 8, 10},
		{11, 12, 13, 14, 15},
	}

	t.Run("rejects permutation of used combination", func(t *testing.T) {
		err := CheckAgainstUsed(NumberSet{10, 8, 6, 4, 2}, used)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCombinationAlreadyUsed)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.ElementsMatch(t, []int32{10, 8, 6, 4, 2}, vErr.Values())
	})

	t.Run("accepts unused combination", func(t *testing.T) {
		assert.NoError(t, CheckAgainstUsed(NumberSet{1, 2, 3, 4, 5}, used))
	})

	t.Run("accepts any combination against empty history", func(t *testing.T) {
		assert.NoError(t, CheckAgainstUsed(NumberSet{2, 4, 6, 8, 10}, nil))
	})
}
