package core_test

import (
	"testing"

	"github.com/katalvlaran/mensa/core"
	"github.com/stretchr/testify/assert"
)

// TestAnswer_String covers the canonical rendering of all three kinds.
func TestAnswer_String(t *testing.T) {
	a := core.IntAnswer(1, 1, core.DomainNumeric, 115)
	assert.Equal(t, "115", a.String())

	a = core.TextAnswer(1, 26, core.DomainArrows, "(→, ↗)")
	assert.Equal(t, "(→, ↗)", a.String())

	a = core.PairAnswer(1, 81, core.DomainShapes, 3, 7)
	assert.Equal(t, "(3, 7)", a.String())
}

// TestAnswer_Constructors checks the helpers stamp key, domain and kind.
func TestAnswer_Constructors(t *testing.T) {
	a := core.PairAnswer(7, 85, core.DomainShapes, 2, 9)
	assert.Equal(t, 7, a.TestID)
	assert.Equal(t, 85, a.QuestionIdx)
	assert.Equal(t, core.DomainShapes, a.Domain)
	assert.Equal(t, core.AnswerIntPair, a.Kind)
	assert.Equal(t, [2]int{2, 9}, a.Pair)
}
