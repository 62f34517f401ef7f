// Package arrows generates and solves the dual arrow-cycle questions of
// the bank (question_idx 26–35 of every test).
//
// Two independent 4-element cycles run at different speeds:
//
//	Primary:   ↑ → ↓ ←
//	Secondary: ↖ ↗ ↘ ↙
//
// Positions N₁ = 7·test_id + 11·local and N₂ = 5·test_id − 3·local index
// the cycles 1-based: the element at position N is cycle[(N−1) mod 4],
// with the residue always taken in [0, 4) even for negative N (N₂ can go
// negative for small test ids). The generator shows the unresolved
// position expressions; the solver resolves them to the ordered pair.
package arrows

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mensa/core"
)

var (
	primary   = [4]string{"↑", "→", "↓", "←"}
	secondary = [4]string{"↖", "↗", "↘", "↙"}
)

// posMod returns n mod m with a non-negative result in [0, m).
// Go's % keeps the sign of the dividend, which is wrong for negative N.
func posMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// positions computes the two raw cycle positions for a key.
func positions(testID, local int) (n1, n2 int) {
	return 7*testID + 11*local, 5*testID - 3*local
}

// Generate renders the dual-cycle question for the key, showing the
// position expressions unresolved. Returns core.ErrIndexOutOfRange for
// keys outside the bank or outside this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainArrows); err != nil {
		return core.Question{}, err
	}
	local := questionIdx - 25 // 1..10
	n1, n2 := positions(testID, local)

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Dual-arrow cycle – hard):\n"+
			"Consider two infinite repeating sequences:\n"+
			"  Primary:   %s (then repeats)\n"+
			"  Secondary: %s (then repeats)\n\n"+
			"At position N₁ = 7·%d + 11·%d in the Primary sequence,\n"+
			"and position N₂ = 5·%d − 3·%d in the Secondary sequence,\n"+
			"a pair of arrows (A, B) is observed.\n\n"+
			"What is the ordered pair (A, B)?",
		testID, questionIdx,
		strings.Join(primary[:], ", "), strings.Join(secondary[:], ", "),
		testID, local, testID, local)

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainArrows,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":     local,
			"primary_cycle":   append([]string(nil), primary[:]...),
			"secondary_cycle": append([]string(nil), secondary[:]...),
			"n1":              n1,
			"n2":              n2,
			"N1_expression":   fmt.Sprintf("7*%d + 11*%d", testID, local),
			"N2_expression":   fmt.Sprintf("5*%d - 3*%d", testID, local),
		},
	}, nil
}

// Solve resolves both positions modulo 4 and returns the observed pair
// as the text "(A, B)". Returns core.ErrIndexOutOfRange for keys outside
// the bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainArrows); err != nil {
		return core.Answer{}, err
	}
	local := questionIdx - 25 // 1..10
	n1, n2 := positions(testID, local)

	a := primary[posMod(n1-1, 4)]
	b := secondary[posMod(n2-1, 4)]

	return core.TextAnswer(testID, questionIdx, core.DomainArrows, fmt.Sprintf("(%s, %s)", a, b)), nil
}
