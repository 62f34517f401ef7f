// Package baseconv generates and solves the base-conversion questions of
// the bank (question_idx 71–80 of every test).
//
// A hidden integer N = 200 + 17·test_id + 11·local is rendered in three
// bases, each chosen in [5,16] by modular formulas. base_x and base_y are
// forced distinct (base_y re-rolled via an alternate formula, falling
// back to 16 on a second collision); base_z is independent and may
// coincide with either. The representations are mutually redundant flavor
// text — the solver returns N in decimal without ever re-parsing them.
package baseconv

import (
	"fmt"

	"github.com/katalvlaran/mensa/core"
)

// digits is the rendering alphabet: '0'-'9' then 'A'-'Z', MSD first.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// toBase renders n ≥ 0 in the given base, "0" for n = 0.
func toBase(n, base int) string {
	if n == 0 {
		return "0"
	}
	var out []byte
	for x := n; x > 0; x /= base {
		out = append([]byte{digits[x%base]}, out...)
	}
	return string(out)
}

// bases computes the three display bases for a key; bx ≠ by always.
func bases(testID, local int) (bx, by, bz int) {
	bx = 5 + (testID+local)%12
	by = 5 + (2*testID+local)%12
	if by == bx {
		by = 5 + (3*testID+local)%12
		if by == bx {
			by = 16
		}
	}
	bz = 5 + (testID+2*local)%12
	return bx, by, bz
}

// hidden computes the encoded integer for a key. Always positive.
func hidden(testID, local int) int {
	return 200 + 17*testID + 11*local
}

// Generate renders the cross-base question for the key. Returns
// core.ErrIndexOutOfRange for keys outside the bank or this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainBaseConv); err != nil {
		return core.Question{}, err
	}
	local := questionIdx - 70 // 1..10
	bx, by, bz := bases(testID, local)
	n := hidden(testID, local)

	reprX, reprY, reprZ := toBase(n, bx), toBase(n, by), toBase(n, bz)

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Base conversion – hard):\n"+
			"A certain integer N is written as %s in base %d and as "+
			"%s in base %d. When expressed in base %d, it "+
			"would be written as %s.\n\n"+
			"All three representations refer to the same integer N.\n"+
			"What is the value of N when written in base 10 (ordinary decimal)?",
		testID, questionIdx, reprX, bx, reprY, by, bz, reprZ)

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainBaseConv,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index": local,
			"base_x":      bx,
			"base_y":      by,
			"base_z":      bz,
			"repr_x":      reprX,
			"repr_y":      reprY,
			"repr_z":      reprZ,
		},
	}, nil
}

// Solve returns the hidden integer in base 10. The rendered
// representations are never consulted. Returns core.ErrIndexOutOfRange
// for keys outside the bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainBaseConv); err != nil {
		return core.Answer{}, err
	}
	local := questionIdx - 70 // 1..10

	return core.IntAnswer(testID, questionIdx, core.DomainBaseConv, hidden(testID, local)), nil
}
