// Package selfref generates and solves the self-referential counting
// questions of the bank (question_idx 91–100 of every test).
//
// The condition ranges over the test's own question numbers 1..100:
// digit = (test_id+local) mod 10 and mode = (test_id+2·local) mod 4
// select one of four counting conditions —
//
//	0: decimal form contains digit
//	1: contains digit AND even
//	2: contains digit AND prime
//	3: contains digit OR divisible by 9
//
// The generator states the condition in prose; the solver counts the
// matching numbers exhaustively. There is no dependence on other
// questions' answers — only on the numbering space itself.
package selfref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mensa/core"
)

// hasDigit reports whether n's decimal form contains the digit d.
func hasDigit(n, d int) bool {
	return strings.Contains(strconv.Itoa(n), strconv.Itoa(d))
}

// isPrime is trial division up to √n; true primality, in contrast to the
// logic band's "prime-like" relaxation.
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

// selectors computes the digit and mode for a key.
func selectors(testID, local int) (digit, mode int) {
	return (testID + local) % 10, (testID + 2*local) % 4
}

// conditionText renders the counting condition in prose, as shown to the
// test taker.
func conditionText(digit, mode int) string {
	switch mode {
	case 0:
		return fmt.Sprintf("contain the digit %d at least once (in decimal notation)", digit)
	case 1:
		return fmt.Sprintf("contain the digit %d at least once AND are even numbers", digit)
	case 2:
		return fmt.Sprintf("contain the digit %d at least once AND are prime numbers", digit)
	default:
		return fmt.Sprintf("contain the digit %d at least once OR are divisible by 9", digit)
	}
}

// Generate renders the self-referential question for the key. Returns
// core.ErrIndexOutOfRange for keys outside the bank or this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainSelfRef); err != nil {
		return core.Question{}, err
	}
	local := questionIdx - 90 // 1..10
	digit, mode := selectors(testID, local)

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Self-referential – hard):\n"+
			"In this test, questions are numbered from 1 to %d.\n"+
			"Consider those question numbers that %s.\n\n"+
			"How many such question numbers are there?",
		testID, questionIdx, core.QuestionsPerTest, conditionText(digit, mode))

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainSelfRef,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index": local,
			"digit":       digit,
			"mode":        mode,
			"range":       [2]int{1, core.QuestionsPerTest},
		},
	}, nil
}

// Solve counts the question numbers in 1..QuestionsPerTest satisfying the
// selected condition. Returns core.ErrIndexOutOfRange for keys outside
// the bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainSelfRef); err != nil {
		return core.Answer{}, err
	}
	local := questionIdx - 90 // 1..10
	digit, mode := selectors(testID, local)

	count := 0
	for n := 1; n <= core.QuestionsPerTest; n++ {
		hasD := hasDigit(n, digit)
		var cond bool
		switch mode {
		case 0:
			cond = hasD
		case 1:
			cond = hasD && n%2 == 0
		case 2:
			cond = hasD && isPrime(n)
		default:
			cond = hasD || n%9 == 0
		}
		if cond {
			count++
		}
	}

	return core.IntAnswer(testID, questionIdx, core.DomainSelfRef, count), nil
}
