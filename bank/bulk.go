// SPDX-License-Identifier: MIT
// Package bank: bulk helpers over the per-question entry points.
// Generation is embarrassingly parallel — every call reads two ints and
// fixed constants — so GenerateAll needs nothing beyond an errgroup
// fan-out with deterministic slot assignment.

package bank

import (
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mensa/core"
)

// GenerateTest generates all QuestionsPerTest questions of one test, in
// ascending question order. Returns core.ErrIndexOutOfRange when testID
// is outside [1, NumTests].
func GenerateTest(testID int) ([]core.Question, error) {
	if err := core.CheckTestID(testID); err != nil {
		return nil, err
	}
	qs := make([]core.Question, core.QuestionsPerTest)
	for idx := 1; idx <= core.QuestionsPerTest; idx++ {
		q, err := GenerateQuestion(testID, idx)
		if err != nil {
			return nil, err
		}
		qs[idx-1] = q
	}
	return qs, nil
}

// SolveTest solves all QuestionsPerTest questions of one test, in
// ascending question order. Returns core.ErrIndexOutOfRange when testID
// is outside [1, NumTests].
func SolveTest(testID int) ([]core.Answer, error) {
	if err := core.CheckTestID(testID); err != nil {
		return nil, err
	}
	as := make([]core.Answer, core.QuestionsPerTest)
	for idx := 1; idx <= core.QuestionsPerTest; idx++ {
		a, err := SolveQuestion(testID, idx)
		if err != nil {
			return nil, err
		}
		as[idx-1] = a
	}
	return as, nil
}

// AllTests returns a finite, restartable enumeration of the whole bank:
// (testID, questions) pairs for testID 1..NumTests, ascending. The
// sequence is stateless and yields identical content on every ranging.
func AllTests() iter.Seq2[int, []core.Question] {
	return func(yield func(int, []core.Question) bool) {
		for t := 1; t <= core.NumTests; t++ {
			qs, _ := GenerateTest(t) // t is always in range here
			if !yield(t, qs) {
				return
			}
		}
	}
}

// GenerateAll generates every test of the bank, fanning the per-test work
// out over at most workers goroutines (workers < 1 means one per test).
// The result is indexed by testID-1 regardless of completion order, so
// output is deterministic.
func GenerateAll(workers int) ([][]core.Question, error) {
	out := make([][]core.Question, core.NumTests)

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for t := 1; t <= core.NumTests; t++ {
		g.Go(func() error {
			qs, err := GenerateTest(t)
			if err != nil {
				return err
			}
			out[t-1] = qs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
