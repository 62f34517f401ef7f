// SPDX-License-Identifier: MIT
// Package bank: the twin generator/solver dispatchers.
// The band boundaries below appear twice on purpose: generator and
// solver are mirror images keyed by the same partition, and each entry
// point must hold the mapping verbatim.

package bank

import (
	"github.com/katalvlaran/mensa/arrows"
	"github.com/katalvlaran/mensa/baseconv"
	"github.com/katalvlaran/mensa/core"
	"github.com/katalvlaran/mensa/letters"
	"github.com/katalvlaran/mensa/logic"
	"github.com/katalvlaran/mensa/numseq"
	"github.com/katalvlaran/mensa/raven"
	"github.com/katalvlaran/mensa/selfref"
	"github.com/katalvlaran/mensa/shapes"
	"github.com/katalvlaran/mensa/wordmath"
)

// GenerateQuestion produces the puzzle for (testID, questionIdx).
// The returned Question carries prompt and audit metadata but never the
// answer. Returns core.ErrIndexOutOfRange when testID ∉ [1, NumTests] or
// questionIdx ∉ [1, QuestionsPerTest].
func GenerateQuestion(testID, questionIdx int) (core.Question, error) {
	if err := core.CheckKey(testID, questionIdx); err != nil {
		return core.Question{}, err
	}

	switch {
	case questionIdx <= 15:
		return numseq.Generate(testID, questionIdx)
	case questionIdx <= 25:
		return logic.Generate(testID, questionIdx)
	case questionIdx <= 35:
		return arrows.Generate(testID, questionIdx)
	case questionIdx <= 45:
		return letters.Generate(testID, questionIdx)
	case questionIdx <= 55:
		return wordmath.Generate(testID, questionIdx)
	case questionIdx <= 70:
		return raven.Generate(testID, questionIdx)
	case questionIdx <= 80:
		return baseconv.Generate(testID, questionIdx)
	case questionIdx <= 90:
		return shapes.Generate(testID, questionIdx)
	default: // 91..100
		return selfref.Generate(testID, questionIdx)
	}
}

// SolveQuestion recomputes the unique answer for (testID, questionIdx)
// using the same derived parameters as GenerateQuestion. Returns
// core.ErrIndexOutOfRange for the same misuse cases.
func SolveQuestion(testID, questionIdx int) (core.Answer, error) {
	if err := core.CheckKey(testID, questionIdx); err != nil {
		return core.Answer{}, err
	}

	switch {
	case questionIdx <= 15:
		return numseq.Solve(testID, questionIdx)
	case questionIdx <= 25:
		return logic.Solve(testID, questionIdx)
	case questionIdx <= 35:
		return arrows.Solve(testID, questionIdx)
	case questionIdx <= 45:
		return letters.Solve(testID, questionIdx)
	case questionIdx <= 55:
		return wordmath.Solve(testID, questionIdx)
	case questionIdx <= 70:
		return raven.Solve(testID, questionIdx)
	case questionIdx <= 80:
		return baseconv.Solve(testID, questionIdx)
	case questionIdx <= 90:
		return shapes.Solve(testID, questionIdx)
	default: // 91..100
		return selfref.Solve(testID, questionIdx)
	}
}
