// SPDX-License-Identifier: MIT
// Package core: the fixed band partition of question indices.
// This table is the invariant shared by generator and solver; the bank
// entry points each carry their own literal copy of the same boundaries,
// and tests pin all three against each other.

package core

// Band is one contiguous run of question indices owned by a single Domain.
type Band struct {
	// Lo and Hi are the inclusive question-index bounds of the band.
	Lo, Hi int

	// Domain owns every question_idx in [Lo, Hi].
	Domain Domain
}

// bands is the authoritative partition of 1..QuestionsPerTest into nine
// non-overlapping contiguous bands (15/10/10/10/10/15/10/10/10).
var bands = [domainCount]Band{
	{1, 15, DomainNumeric},
	{16, 25, DomainLogic},
	{26, 35, DomainArrows},
	{36, 45, DomainLetters},
	{46, 55, DomainWordMath},
	{56, 70, DomainRaven},
	{71, 80, DomainBaseConv},
	{81, 90, DomainShapes},
	{91, 100, DomainSelfRef},
}

// DomainOf returns the Domain owning questionIdx.
// Returns ErrIndexOutOfRange when questionIdx ∉ [1, QuestionsPerTest].
func DomainOf(questionIdx int) (Domain, error) {
	b, err := BandOf(questionIdx)
	if err != nil {
		return 0, err
	}
	return b.Domain, nil
}

// BandOf returns the full band owning questionIdx.
// Returns ErrIndexOutOfRange when questionIdx ∉ [1, QuestionsPerTest].
func BandOf(questionIdx int) (Band, error) {
	if questionIdx < 1 || questionIdx > QuestionsPerTest {
		return Band{}, errQuestionIdx(questionIdx)
	}
	for _, b := range bands {
		if questionIdx >= b.Lo && questionIdx <= b.Hi {
			return b, nil
		}
	}
	// Unreachable: bands cover 1..QuestionsPerTest without gaps.
	return Band{}, errQuestionIdx(questionIdx)
}

// Bands returns a copy of the partition table, ordered by ascending Lo.
// Intended for auditing and table-driven tests; mutating the copy has no
// effect on dispatch.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])
	return out
}
