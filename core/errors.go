// SPDX-License-Identifier: MIT
// Package core: sentinel error set and key validation.
// The module has exactly one failure mode — an index outside its closed
// range. Call sites wrap the sentinel with which index was bad; callers
// match it via errors.Is.

package core

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates test_id ∉ [1, NumTests] or
// question_idx ∉ [1, QuestionsPerTest]. It signals caller misuse and is
// never retried or recovered.
var ErrIndexOutOfRange = errors.New("core: index out of range")

// CheckTestID validates a test identifier on its own; bulk helpers that
// take no question index use it directly.
func CheckTestID(testID int) error {
	if testID < 1 || testID > NumTests {
		return fmt.Errorf("%w: test_id %d must be in 1..%d", ErrIndexOutOfRange, testID, NumTests)
	}
	return nil
}

// CheckKey validates a (testID, questionIdx) key pair.
// Returns nil for valid keys, or ErrIndexOutOfRange (wrapped with the
// offending index) otherwise. test_id is checked first.
func CheckKey(testID, questionIdx int) error {
	if err := CheckTestID(testID); err != nil {
		return err
	}
	if questionIdx < 1 || questionIdx > QuestionsPerTest {
		return errQuestionIdx(questionIdx)
	}
	return nil
}

// errQuestionIdx wraps ErrIndexOutOfRange for a bad question index.
func errQuestionIdx(questionIdx int) error {
	return fmt.Errorf("%w: question_idx %d must be in 1..%d", ErrIndexOutOfRange, questionIdx, QuestionsPerTest)
}

// CheckBand validates a key and additionally requires questionIdx to fall
// inside the band owned by want. Domain packages use it so that calling a
// handler with another band's index fails the same way as any range misuse.
func CheckBand(testID, questionIdx int, want Domain) error {
	if err := CheckKey(testID, questionIdx); err != nil {
		return err
	}
	b := bands[want]
	if questionIdx < b.Lo || questionIdx > b.Hi {
		return fmt.Errorf("%w: question_idx %d outside %s band %d..%d",
			ErrIndexOutOfRange, questionIdx, want, b.Lo, b.Hi)
	}
	return nil
}
