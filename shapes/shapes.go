package shapes

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mensa/core"
)

var (
	glyphsA = [3]string{"●", "■", "▲"}
	glyphsB = [3]string{"◆", "✚", "✕"}
)

// ruleHint is flavor text echoed in question metadata.
const ruleHint = "two coupled linear progressions modulo different bases"

// recurrences holds the six derived scalars plus the two symbol glyphs.
type recurrences struct {
	local            int // 1..10
	modA, modB       int // ≥5 and ≥6 respectively
	baseA, baseB     int
	stepA, stepB     int
	symbolA, symbolB string
}

// derive computes the recurrence parameters for a key.
func derive(testID, questionIdx int) recurrences {
	local := questionIdx - 80 // 1..10

	r := recurrences{
		local: local,
		modA:  5 + (testID+local)%5,
		modB:  6 + (2*testID+local)%5,
	}
	r.baseA = 1 + (testID+2*local)%r.modA
	r.baseB = 1 + (2*testID+3*local)%r.modB
	r.stepA = 1 + (3*testID+local)%r.modA
	r.stepB = 1 + (4*testID+2*local)%r.modB
	r.symbolA = glyphsA[(testID+local)%3]
	r.symbolB = glyphsB[(2*testID+local)%3]
	return r
}

// countsAt evaluates both recurrences at figure k, residues in [1, modulus].
func (r recurrences) countsAt(k int) (a, b int) {
	a = (r.baseA + (k-1)*r.stepA) % r.modA
	b = (r.baseB + (k-1)*r.stepB) % r.modB
	if a == 0 {
		a = r.modA
	}
	if b == 0 {
		b = r.modB
	}
	return a, b
}

// Generate renders figures 1–4 as symbol counts and asks for figure 5.
// Returns core.ErrIndexOutOfRange for keys outside the bank or this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainShapes); err != nil {
		return core.Question{}, err
	}
	r := derive(testID, questionIdx)

	firstA := make([]int, 4)
	firstB := make([]int, 4)
	lines := make([]string, 4)
	for k := 1; k <= 4; k++ {
		a, b := r.countsAt(k)
		firstA[k-1], firstB[k-1] = a, b
		lines[k-1] = fmt.Sprintf("Figure %d: %d %s symbols and %d %s symbols.",
			k, a, r.symbolA, b, r.symbolB)
	}

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Next figure – coupled modulo):\n"+
			"Consider the sequence of abstract figures:\n\n"+
			"%s\n\n"+
			"The counts of %s and %s symbols each follow a modular\n"+
			"arithmetic rule (but possibly with different moduli and steps).\n\n"+
			"In Figure 5, how many %s symbols and how many %s symbols "+
			"should appear?",
		testID, questionIdx, strings.Join(lines, "\n"),
		r.symbolA, r.symbolB, r.symbolA, r.symbolB)

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainShapes,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":  r.local,
			"modulus_A":    r.modA,
			"modulus_B":    r.modB,
			"base_A":       r.baseA,
			"base_B":       r.baseB,
			"step_A":       r.stepA,
			"step_B":       r.stepB,
			"shapeA":       r.symbolA,
			"shapeB":       r.symbolB,
			"first_four_A": firstA,
			"first_four_B": firstB,
			"rule_hint":    ruleHint,
		},
	}, nil
}

// Solve evaluates both recurrences at k=5 and returns the count pair.
// Returns core.ErrIndexOutOfRange for keys outside the bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainShapes); err != nil {
		return core.Answer{}, err
	}
	a, b := derive(testID, questionIdx).countsAt(5)

	return core.PairAnswer(testID, questionIdx, core.DomainShapes, a, b), nil
}
