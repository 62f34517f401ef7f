package wordmath_test

import (
	"testing"

	"github.com/katalvlaran/mensa/core"
	"github.com/katalvlaran/mensa/wordmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_KnownValues pins hand-computed keys. (1,46): (5+2·5)·2−3 = 27,
// 27/3 = 9.
func TestSolve_KnownValues(t *testing.T) {
	cases := []struct {
		testID, idx, want int
	}{
		{1, 46, 9},
		{500, 50, 12},
		{1000, 46, 12},
	}
	for _, tc := range cases {
		a, err := wordmath.Solve(tc.testID, tc.idx)
		require.NoError(t, err, "key (%d,%d)", tc.testID, tc.idx)
		assert.Equal(t, core.AnswerInt, a.Kind)
		assert.Equal(t, tc.want, a.Int, "key (%d,%d)", tc.testID, tc.idx)
	}
}

// TestSolve_MatchesMetaArithmetic runs the narrative arithmetic from the
// generator's metadata and checks the solver agrees, with floor division
// by the team count.
func TestSolve_MatchesMetaArithmetic(t *testing.T) {
	for _, testID := range []int{1, 77, 448, 1000} {
		for idx := 46; idx <= 55; idx++ {
			q, err := wordmath.Generate(testID, idx)
			require.NoError(t, err)

			total := q.Meta["base_items"].(int) + q.Meta["daily_gain"].(int)*q.Meta["days"].(int)
			total *= q.Meta["bonus_factor"].(int)
			total -= q.Meta["loss"].(int)

			a, err := wordmath.Solve(testID, idx)
			require.NoError(t, err)
			assert.Equal(t, total/q.Meta["groups"].(int), a.Int, "key (%d,%d)", testID, idx)
			assert.Positive(t, total, "pre-division total must stay positive, key (%d,%d)", testID, idx)
		}
	}
}

// TestGenerate_StoryScalarsInRange checks the derived scalars stay inside
// their construction ranges; in particular the team count is ≥2 and the
// loss fits below group+1.
func TestGenerate_StoryScalarsInRange(t *testing.T) {
	for _, testID := range []int{1, 9, 360, 1000} {
		for idx := 46; idx <= 55; idx++ {
			q, err := wordmath.Generate(testID, idx)
			require.NoError(t, err)

			group := q.Meta["groups"].(int)
			assert.GreaterOrEqual(t, group, 2, "key (%d,%d)", testID, idx)
			assert.LessOrEqual(t, group, 5, "key (%d,%d)", testID, idx)
			assert.Less(t, q.Meta["loss"].(int), group+1, "key (%d,%d)", testID, idx)
			assert.GreaterOrEqual(t, q.Meta["base_items"].(int), 4, "key (%d,%d)", testID, idx)
			assert.GreaterOrEqual(t, q.Meta["days"].(int), 3, "key (%d,%d)", testID, idx)
		}
	}
}

// TestRejectsBadKeys covers range misuse and foreign-band indices.
func TestRejectsBadKeys(t *testing.T) {
	_, err := wordmath.Generate(0, 46)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = wordmath.Solve(1, 56)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "raven-band index must be rejected")
}
