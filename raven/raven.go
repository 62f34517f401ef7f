package raven

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mensa/core"
)

var (
	shapeGlyphs  = [4]string{"▲", "■", "●", "★"}
	orientations = [4]string{"0°", "90°", "180°", "270°"}
	fillGlyphs   = [3]string{"○", "◐", "●"} // empty, half, full
)

// hints is the fixed flavor-hint table, indexed by rule type. Hints are
// decorative only; solving never consults them.
var hints = [4]string{
	"Row-wise, orientation changes in fixed increments.",
	"Column-wise, fill levels behave like addition modulo 3.",
	"Shapes drift systematically across rows and columns.",
	"Some rows can be interpreted as an 'xor' of feature patterns.",
}

// grid holds the derived per-key bases and the hidden-cell selection.
type grid struct {
	local      int // 1..15
	baseShape  int
	baseOrient int
	baseFill   int
	ruleType   int // hint selector, 0..3
	missR      int
	missC      int
}

// derive computes the grid parameters for a key.
func derive(testID, questionIdx int) grid {
	local := questionIdx - 55 // 1..15

	g := grid{
		local:      local,
		baseShape:  (testID + local) % 4,
		baseOrient: (2*testID + local) % 4,
		baseFill:   (3*testID + 2*local) % 3,
		ruleType:   (testID + 2*local) % 4,
	}
	switch (testID + local) % 3 {
	case 0:
		g.missR, g.missC = 2, 2 // bottom-right
	case 1:
		g.missR, g.missC = 1, 1 // center
	default:
		g.missR, g.missC = 0, 2 // top-right
	}
	return g
}

// cell renders the figure at (r, c) in "shape+fill(orientation°)" form.
func (g grid) cell(r, c int) string {
	s := (g.baseShape + r + 2*c) % 4
	o := (g.baseOrient + 2*r + c) % 4
	f := (g.baseFill + r + c) % 3
	return shapeGlyphs[s] + fillGlyphs[f] + "(" + orientations[o] + ")"
}

// Generate renders the full 3×3 grid with the hidden cell replaced by a
// placeholder, plus the selected hint. Returns core.ErrIndexOutOfRange
// for keys outside the bank or outside this band.
func Generate(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainRaven); err != nil {
		return core.Question{}, err
	}
	g := derive(testID, questionIdx)

	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			if r == g.missR && c == g.missC {
				cells[c] = " ? "
			} else {
				cells[c] = g.cell(r, c)
			}
		}
		rows[r] = strings.Join(cells, " | ")
	}

	prompt := fmt.Sprintf(
		"Test %d, Q%d (Raven-style matrix – hard):\n"+
			"Below is a 3×3 grid of abstract figures; one cell is replaced by '?'.\n\n"+
			"%s\n\n"+
			"The grid obeys a consistent rule combining row and column changes\n"+
			"in shape, orientation, and fill.\n"+
			"Which figure should replace '?'?\n\n"+
			"Hint: %s",
		testID, questionIdx, strings.Join(rows, "\n"), hints[g.ruleType])

	return core.Question{
		TestID:      testID,
		QuestionIdx: questionIdx,
		Domain:      core.DomainRaven,
		Prompt:      prompt,
		Meta: core.Meta{
			"local_index":      g.local,
			"rule_type":        g.ruleType,
			"base_shape":       g.baseShape,
			"base_orientation": g.baseOrient,
			"base_fill":        g.baseFill,
			"missing_cell":     map[string]int{"row": g.missR, "col": g.missC},
		},
	}, nil
}

// Solve evaluates the drift formulas at the hidden cell and returns its
// rendered figure. Returns core.ErrIndexOutOfRange for keys outside the
// bank or this band.
func Solve(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckBand(testID, questionIdx, core.DomainRaven); err != nil {
		return core.Answer{}, err
	}
	g := derive(testID, questionIdx)

	return core.TextAnswer(testID, questionIdx, core.DomainRaven, g.cell(g.missR, g.missC)), nil
}
