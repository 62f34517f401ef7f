// Package letters generates and solves the letter-analogy questions of
// the bank (question_idx 36–45 of every test).
//
// The hidden rule is an affine map on alphabet positions (A=0..Z=25):
//
//	f(x) = (a·x + b) mod 26
//
// a = (2·test_id+1) mod 26, bumped by 1 if even, so a is always odd and
// the map invertible mod 26. b = (3·local + test_id) mod 26. The prompt
// shows one example pair (x₁ → f(x₁)) and asks for the image of
// x₂ = (x₁+13) mod 26; the solver applies the closed form directly — it
// never needs to recover a and b from the example.
package letters

import (
	"fmt"

	"github.com/katalvlaran/mensa/core"
)

// affine holds the derived map coefficients and probe positions.
type affine struct {
	local int // 1..10
	a, b  int // map coefficients in Z26, a odd
	x1    int // example input position
	x2    int // query input position
}

// derive computes the affine parameters for a key.
func derive(testID, questionIdx int) affine {
	local := questionIdx - 35 // 1..10

	a := (2*testID + 1) % 26
	if a%2 == 0 {
		// 2·test_id+1 is odd and 26 is even, so this never fires;
		// kept to match the construction rule exactly.
		a = (a + 1) % 26
	}
	b := (3*local + testID) % 26

	x1 := (5*testID + local) % 26
	return affine{local: local, a: a, b: b, x1: x1, x2: (x1 + 13) % 26}
}

// letter maps an alphabet position to its uppercase letter.
func letter(pos int) string {
	return string(rune('A' + pos%26))
}

// Generate renders the analogy question for the key, showing one example
// mapping and one query letter. Returns core.ErrIndexOutOfRange for keys
// outside the bank or outside this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainLetters); err != nil {
		return core.Question{}, err
	}
	f := derive(testID, questionIdx)

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Letter analogy – hard):\n"+
			"A secret code maps each letter to another letter according to\n"+
			"a fixed rule on its position in the alphabet.\n\n"+
			"Example:\n"+
			"    %s → %s\n\n"+
			"Using the same hidden rule, what letter does %s map to?\n"+
			"(All letters are in A–Z, positions taken modulo 26.)",
		testID, questionIdx,
		letter(f.x1), letter((f.a*f.x1+f.b)%26), letter(f.x2))

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainLetters,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":         f.local,
			"a_mod_26":            f.a,
			"b_mod_26":            f.b,
			"example_input_index": f.x1,
			"query_input_index":   f.x2,
		},
	}, nil
}

// Solve applies the affine map to the query position and returns the
// resulting letter. Returns core.ErrIndexOutOfRange for keys outside the
// bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainLetters); err != nil {
		return core.Answer{}, err
	}
	f := derive(testID, questionIdx)

	return core.TextAnswer(testID, questionIdx, core.DomainLetters, letter((f.a*f.x2+f.b)%26)), nil
}
