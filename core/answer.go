// SPDX-License-Identifier: MIT
// Package core: the Answer tagged variant.
// Answer shape depends on domain (integer | text | pair of integers), so it
// is modeled as one struct tagged by AnswerKind rather than an interface
// per shape — mirrors how Domain itself is a closed enum.

package core

import (
	"fmt"
	"strconv"
)

// AnswerKind tags which field of Answer carries the value.
type AnswerKind uint8

const (
	// AnswerInt - a single integer (numeric, word-arithmetic, base
	// conversion, and self-referential domains).
	AnswerInt AnswerKind = iota

	// AnswerText - a string: "TRUE"/"FALSE", a single letter, an ordered
	// arrow pair "(↑, ↘)", or a Raven figure "▲○(0°)".
	AnswerText

	// AnswerIntPair - an ordered pair of integers (shape-count domain).
	AnswerIntPair
)

// Answer is the unique solution of one question. It is recomputed on
// demand from (TestID, QuestionIdx) and carries no further identity.
type Answer struct {
	// TestID and QuestionIdx echo the key the answer was derived from.
	TestID      int `json:"test_id"`
	QuestionIdx int `json:"question_idx"`

	// Domain tags which family solved this question.
	Domain Domain `json:"domain"`

	// Kind selects which of the value fields below is meaningful.
	Kind AnswerKind `json:"kind"`

	// Int holds the value when Kind==AnswerInt.
	Int int `json:"int,omitempty"`

	// Text holds the value when Kind==AnswerText.
	Text string `json:"text,omitempty"`

	// Pair holds the value when Kind==AnswerIntPair.
	Pair [2]int `json:"pair,omitempty"`
}

// String renders the canonical textual form of the answer: integers in
// decimal, text verbatim, pairs as "(a, b)".
func (a Answer) String() string {
	switch a.Kind {
	case AnswerInt:
		return strconv.Itoa(a.Int)
	case AnswerText:
		return a.Text
	case AnswerIntPair:
		return fmt.Sprintf("(%d, %d)", a.Pair[0], a.Pair[1])
	default:
		return ""
	}
}

// IntAnswer builds an integer-valued Answer for the given key and domain.
func IntAnswer(testID, questionIdx int, d Domain, v int) Answer {
	return Answer{TestID: testID, QuestionIdx: questionIdx, Domain: d, Kind: AnswerInt, Int: v}
}

// TextAnswer builds a text-valued Answer for the given key and domain.
func TextAnswer(testID, questionIdx int, d Domain, v string) Answer {
	return Answer{TestID: testID, QuestionIdx: questionIdx, Domain: d, Kind: AnswerText, Text: v}
}

// PairAnswer builds a pair-valued Answer for the given key and domain.
func PairAnswer(testID, questionIdx int, d Domain, a, b int) Answer {
	return Answer{TestID: testID, QuestionIdx: questionIdx, Domain: d, Kind: AnswerIntPair, Pair: [2]int{a, b}}
}
