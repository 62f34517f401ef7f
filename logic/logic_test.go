package logic_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mensa/core"
	"github.com/katalvlaran/mensa/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_KnownVerdicts pins hand-evaluated keys, including the
// (1,16) case: pattern (p⊕q)∧(q∨r) with p=q=r=false.
func TestSolve_KnownVerdicts(t *testing.T) {
	cases := []struct {
		testID, idx int
		want        string
	}{
		{1, 16, "FALSE"},
		{2, 16, "FALSE"},
		{1, 17, "TRUE"},
		{1000, 16, "TRUE"},
		{1000, 25, "FALSE"},
	}
	for _, tc := range cases {
		a, err := logic.Solve(tc.testID, tc.idx)
		require.NoError(t, err, "key (%d,%d)", tc.testID, tc.idx)
		assert.Equal(t, core.AnswerText, a.Kind)
		assert.Equal(t, tc.want, a.Text, "key (%d,%d)", tc.testID, tc.idx)
	}
}

// TestSolve_AlwaysBinary sweeps a slice of the band and checks the answer
// is always exactly "TRUE" or "FALSE".
func TestSolve_AlwaysBinary(t *testing.T) {
	for _, testID := range []int{1, 2, 209, 210, 1000} {
		for idx := 16; idx <= 25; idx++ {
			a, err := logic.Solve(testID, idx)
			require.NoError(t, err)
			assert.Contains(t, []string{"TRUE", "FALSE"}, a.Text, "key (%d,%d)", testID, idx)
		}
	}
}

// TestGenerate_TemplateSelection checks the rendered statement matches
// the (test_id+local) mod 4 selector and appears verbatim in the prompt.
func TestGenerate_TemplateSelection(t *testing.T) {
	templates := [4]string{
		"(p AND q) OR (NOT r)",
		"IF (p AND r) THEN (q XOR r)",
		"(p XOR q) AND (q OR r)",
		"IF (p OR q) THEN (NOT p AND r)",
	}
	for _, testID := range []int{1, 55, 1000} {
		for idx := 16; idx <= 25; idx++ {
			q, err := logic.Generate(testID, idx)
			require.NoError(t, err)

			local := idx - 15
			want := templates[(testID+local)%4]
			assert.Equal(t, want, q.Meta["statement_form"], "key (%d,%d)", testID, idx)
			assert.Contains(t, q.Prompt, "    "+want, "key (%d,%d)", testID, idx)
			assert.Equal(t, (testID+local)%4, q.Meta["pattern_type"], "key (%d,%d)", testID, idx)
		}
	}
}

// TestGenerate_DefinesPrimeLike ensures the relaxed primality definition
// is part of every prompt — without it the statement is unanswerable.
func TestGenerate_DefinesPrimeLike(t *testing.T) {
	q, err := logic.Generate(3, 20)
	require.NoError(t, err)
	assert.True(t, strings.Contains(q.Prompt, "no divisors in the set {2, 3, 5, 7} other than 1"), "prompt: %q", q.Prompt)
	assert.Equal(t, core.DomainLogic, q.Domain)
}

// TestRejectsBadKeys covers range misuse and foreign-band indices.
func TestRejectsBadKeys(t *testing.T) {
	_, err := logic.Generate(1001, 16)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = logic.Solve(1, 15)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "numeric-band index must be rejected")
}
