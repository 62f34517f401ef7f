package numseq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mensa/core"
)

// seqLen is the number of terms in every generated sequence.
const seqLen = 7

// patternHint is flavor text echoed in question metadata.
const patternHint = "mix of linear, quadratic, and parity-based offsets"

// params holds every derived generation parameter. Generator and solver
// obtain them through the same derive call, so the two sides can never
// disagree on a coefficient.
type params struct {
	local      int // 1..15
	base       int
	alpha      int // linear coefficient
	beta       int // quadratic coefficient
	evenOffset int
	oddOffset  int
	missingPos int // 0-based, always in {2, 3, 4}
}

// derive computes the sequence parameters for a key.
func derive(testID, questionIdx int) params {
	local := questionIdx // band starts at question 1
	return params{
		local:      local,
		base:       (3*testID+5*local)%97 + 10,
		alpha:      (2*testID+local)%11 + 1,
		beta:       (testID+3*local)%7 + 1,
		evenOffset: (testID * local) % 9,
		oddOffset:  (testID + local) % 9,
		missingPos: 2 + local%3,
	}
}

// sequence materializes all seqLen terms.
func (p params) sequence() []int {
	seq := make([]int, seqLen)
	for n := 0; n < seqLen; n++ {
		k := n + 1
		v := p.base + p.alpha*k + p.beta*k*k
		if k%2 == 0 {
			v += p.evenOffset
		} else {
			v += p.oddOffset
		}
		seq[n] = v
	}
	return seq
}

// Generate renders the numeric-sequence question for the key, with the
// hidden term shown as "?". Returns core.ErrIndexOutOfRange for keys
// outside the bank or outside this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainNumeric); err != nil {
		return core.Question{}, err
	}
	p := derive(testID, questionIdx)

	shown := make([]string, seqLen)
	for i, v := range p.sequence() {
		if i == p.missingPos {
			shown[i] = "?"
		} else {
			shown[i] = strconv.Itoa(v)
		}
	}

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Numeric sequence – hard):\n"+
			"Fill in the missing number. The rule may depend on position,\n"+
			"parity, and more than one type of growth.\n\n"+
			"Sequence: %s",
		testID, questionIdx, strings.Join(shown, ", "))

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainNumeric,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":  p.local,
			"length":       seqLen,
			"base":         p.base,
			"alpha":        p.alpha,
			"beta":         p.beta,
			"even_offset":  p.evenOffset,
			"odd_offset":   p.oddOffset,
			"missing_pos":  p.missingPos,
			"pattern_hint": patternHint,
		},
	}, nil
}

// Solve recomputes the full sequence and returns the hidden term.
// Returns core.ErrIndexOutOfRange for keys outside the bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainNumeric); err != nil {
		return core.Answer{}, err
	}
	p := derive(testID, questionIdx)

	return core.IntAnswer(testID, questionIdx, core.DomainNumeric, p.sequence()[p.missingPos]), nil
}
