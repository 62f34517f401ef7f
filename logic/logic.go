// Package logic generates and solves the nested propositional questions
// of the bank (question_idx 16–25 of every test).
//
// Three atomic propositions are fixed per key:
//
//	p: test_id is even
//	q: local index is a multiple of 3
//	r: test_id + local index is "prime-like" (no divisor in {2,3,5,7})
//
// One of four nested templates is selected by (test_id+local) mod 4; the
// generator renders definitions and template without evaluating anything,
// and the solver evaluates the template to "TRUE" or "FALSE".
// "IF A THEN B" is material implication: ¬A ∨ B.
package logic

import (
	"fmt"

	"github.com/katalvlaran/mensa/core"
)

// statements are the four nested templates, indexed by pattern type.
var statements = [4]string{
	"(p AND q) OR (NOT r)",
	"IF (p AND r) THEN (q XOR r)",
	"(p XOR q) AND (q OR r)",
	"IF (p OR q) THEN (NOT p AND r)",
}

// primeLikeDef is the side definition rendered into every prompt.
const primeLikeDef = "Call an integer 'prime-like' here if it has no divisors in " +
	"the set {2, 3, 5, 7} other than 1."

// primeLikeRule is the short form stored in question metadata.
const primeLikeRule = "no divisors in {2,3,5,7} besides 1"

// isPrimeLike reports whether n is coprime to 210 — the puzzle's relaxed
// primality notion, distinct from true primality.
func isPrimeLike(n int) bool {
	for _, d := range [...]int{2, 3, 5, 7} {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Generate renders the nested-logic question for the key without
// evaluating it. Returns core.ErrIndexOutOfRange for keys outside the
// bank or outside this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainLogic); err != nil {
		return core.Question{}, err
	}
	local := questionIdx - 15 // 1..10
	patternType := (testID + local) % 4
	stmt := statements[patternType]

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Nested logic – hard):\n"+
			"Let p be: 'test id %d is even'.\n"+
			"Let q be: 'local index %d (1–10 in this block) is a multiple of 3'.\n"+
			"Let r be: 'test_id + local_index is prime-like'.\n\n"+
			"%s\n\n"+
			"Consider the compound statement:\n"+
			"    %s\n\n"+
			"Is this statement TRUE or FALSE?",
		testID, questionIdx, testID, local, primeLikeDef, stmt)

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainLogic,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":     local,
			"pattern_type":    patternType,
			"statement_form":  stmt,
			"prime_like_rule": primeLikeRule,
		},
	}, nil
}

// Solve evaluates p, q, r and the selected template, returning "TRUE" or
// "FALSE". Returns core.ErrIndexOutOfRange for keys outside the bank or
// this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainLogic); err != nil {
		return core.Answer{}, err
	}
	local := questionIdx - 15 // 1..10
	patternType := (testID + local) % 4

	p := testID%2 == 0
	q := local%3 == 0
	r := isPrimeLike(testID + local)

	var val bool
	switch patternType {
	case 0: // (p AND q) OR (NOT r)
		val = (p && q) || !r
	case 1: // IF (p AND r) THEN (q XOR r)
		val = !(p && r) || (q != r)
	case 2: // (p XOR q) AND (q OR r)
		val = (p != q) && (q || r)
	default: // IF (p OR q) THEN (NOT p AND r)
		val = !(p || q) || (!p && r)
	}

	text := "FALSE"
	if val {
		text = "TRUE"
	}
	return core.TextAnswer(testID, questionIdx, core.DomainLogic, text), nil
}
