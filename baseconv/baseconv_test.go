package baseconv_test

import (
	"testing"

	"github.com/katalvlaran/mensa/baseconv"
	"github.com/katalvlaran/mensa/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_KnownValues pins hand-computed keys. (2,71):
// N = 200 + 17·2 + 11·1 = 245.
func TestSolve_KnownValues(t *testing.T) {
	cases := []struct {
		testID, idx, want int
	}{
		{2, 71, 245},
		{999, 73, 17216},
		{1000, 71, 17211},
		{1000, 80, 17310},
	}
	for _, tc := range cases {
		a, err := baseconv.Solve(tc.testID, tc.idx)
		require.NoError(t, err, "key (%d,%d)", tc.testID, tc.idx)
		assert.Equal(t, core.AnswerInt, a.Kind)
		assert.Equal(t, tc.want, a.Int, "key (%d,%d)", tc.testID, tc.idx)
	}
}

// TestGenerate_KnownRepresentations pins the (2,71) metadata: 245 as
// "365" base 8, "245" base 10, "302" base 9.
func TestGenerate_KnownRepresentations(t *testing.T) {
	q, err := baseconv.Generate(2, 71)
	require.NoError(t, err)

	assert.Equal(t, core.DomainBaseConv, q.Domain)
	assert.Equal(t, 8, q.Meta["base_x"])
	assert.Equal(t, 10, q.Meta["base_y"])
	assert.Equal(t, 9, q.Meta["base_z"])
	assert.Equal(t, "365", q.Meta["repr_x"])
	assert.Equal(t, "245", q.Meta["repr_y"])
	assert.Equal(t, "302", q.Meta["repr_z"])
	assert.Contains(t, q.Prompt, "written as 365 in base 8")
}

// TestGenerate_BasesDistinctAndBounded sweeps the entire band of the
// entire bank (10000 keys) and checks base_x ≠ base_y after the re-roll
// rule, with all three bases inside [5,16].
func TestGenerate_BasesDistinctAndBounded(t *testing.T) {
	for testID := 1; testID <= core.NumTests; testID++ {
		for idx := 71; idx <= 80; idx++ {
			q, err := baseconv.Generate(testID, idx)
			require.NoError(t, err)

			bx := q.Meta["base_x"].(int)
			by := q.Meta["base_y"].(int)
			bz := q.Meta["base_z"].(int)
			assert.NotEqual(t, bx, by, "key (%d,%d)", testID, idx)
			for _, b := range []int{bx, by, bz} {
				assert.GreaterOrEqual(t, b, 5, "key (%d,%d)", testID, idx)
				assert.LessOrEqual(t, b, 16, "key (%d,%d)", testID, idx)
			}
		}
	}
}

// TestSolve_IgnoresRenderings checks the decimal answer equals the
// closed form regardless of which bases were picked.
func TestSolve_IgnoresRenderings(t *testing.T) {
	for _, testID := range []int{1, 345, 1000} {
		for idx := 71; idx <= 80; idx++ {
			a, err := baseconv.Solve(testID, idx)
			require.NoError(t, err)

			local := idx - 70
			assert.Equal(t, 200+17*testID+11*local, a.Int, "key (%d,%d)", testID, idx)
		}
	}
}

// TestRejectsBadKeys covers range misuse and foreign-band indices.
func TestRejectsBadKeys(t *testing.T) {
	_, err := baseconv.Generate(1, 101)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = baseconv.Solve(1, 81)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "shapes-band index must be rejected")
}
