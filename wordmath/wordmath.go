// Package wordmath generates and solves the layered word-arithmetic
// questions of the bank (question_idx 46–55 of every test).
//
// The narrative is fixed: start with base_items samples, gain daily_gain
// per day for days days, multiply by bonus_factor, discard exactly loss,
// then split evenly among group teams. All six scalars are fixed modular
// functions of (test_id, local). The final division floors; every
// intermediate quantity is positive by construction, so Go's integer
// division is floor division here.
package wordmath

import (
	"fmt"

	"github.com/katalvlaran/mensa/core"
)

// story holds the six derived narrative scalars.
type story struct {
	local       int // 1..10
	baseItems   int
	dailyGain   int
	days        int
	group       int // team count, ≥2
	bonusFactor int
	loss        int // < group+1
}

// derive computes the story parameters for a key.
func derive(testID, questionIdx int) story {
	local := questionIdx - 45 // 1..10

	s := story{
		local:       local,
		baseItems:   4 + testID%9,
		dailyGain:   1 + local%5,
		days:        3 + (testID+local)%4,
		group:       2 + testID%4,
		bonusFactor: 1 + (testID*local)%3,
	}
	s.loss = (s.baseItems + s.dailyGain) % (s.group + 1)
	return s
}

// Generate renders the word problem for the key. Returns
// core.ErrIndexOutOfRange for keys outside the bank or this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainWordMath); err != nil {
		return core.Question{}, err
	}
	s := derive(testID, questionIdx)

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Layered word problem – hard):\n"+
			"A researcher starts with %d experimental samples.\n"+
			"Each day, they create %d new samples, and this continues "+
			"for %d days. After that, they multiply the total number of "+
			"samples they have by a 'bonus factor' of %d.\n"+
			"Finally, they must discard exactly %d samples due to defects, "+
			"and then divide the remaining samples equally among %d teams.\n\n"+
			"How many samples does each team receive?",
		testID, questionIdx,
		s.baseItems, s.dailyGain, s.days, s.bonusFactor, s.loss, s.group)

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainWordMath,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":  s.local,
			"base_items":   s.baseItems,
			"daily_gain":   s.dailyGain,
			"days":         s.days,
			"bonus_factor": s.bonusFactor,
			"loss":         s.loss,
			"groups":       s.group,
		},
	}, nil
}

// Solve runs the narrative arithmetic and returns the per-team count.
// Returns core.ErrIndexOutOfRange for keys outside the bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainWordMath); err != nil {
		return core.Answer{}, err
	}
	s := derive(testID, questionIdx)

	total := s.baseItems + s.dailyGain*s.days
	total *= s.bonusFactor
	total -= s.loss

	return core.IntAnswer(testID, questionIdx, core.DomainWordMath, total/s.group), nil
}
