// SPDX-License-Identifier: MIT
// Package core: bank dimensions, Domain enumeration, Question value type.
// This file declares the constants and types every domain package builds on.

package core

// Bank dimensions. Fixed; every index formula in the module assumes them.
const (
	// NumTests is the number of tests in the bank.
	NumTests = 1000

	// QuestionsPerTest is the number of questions in every test.
	QuestionsPerTest = 100
)

// Domain identifies one of the nine question families. The zero value is
// DomainNumeric; values are ordered by ascending question-index band.
type Domain uint8

const (
	// DomainNumeric - numeric sequences with one hidden term (Q 1–15).
	DomainNumeric Domain = iota

	// DomainLogic - nested propositional logic statements (Q 16–25).
	DomainLogic

	// DomainArrows - dual arrow-cycle position puzzles (Q 26–35).
	DomainArrows

	// DomainLetters - affine letter analogies over Z26 (Q 36–45).
	DomainLetters

	// DomainWordMath - layered word-arithmetic stories (Q 46–55).
	DomainWordMath

	// DomainRaven - Raven-style 3×3 feature matrices (Q 56–70).
	DomainRaven

	// DomainBaseConv - cross-base number conversion puzzles (Q 71–80).
	DomainBaseConv

	// DomainShapes - coupled modular shape-count sequences (Q 81–90).
	DomainShapes

	// DomainSelfRef - self-referential counting questions (Q 91–100).
	DomainSelfRef

	// domainCount is the number of domains; used for table sizing.
	domainCount
)

// domainTags holds the canonical string tag of each Domain, in declaration
// order. The tags are part of the public question format and must not drift.
var domainTags = [domainCount]string{
	"numeric_sequence_hard",
	"nested_logic_hard",
	"dual_arrow_cycle_hard",
	"letter_analogy_hard",
	"word_arithmetic_hard",
	"raven_matrix_hard",
	"base_conversion_hard",
	"shape_sequence_coupled_modulo_hard",
	"self_referential_hard",
}

// String returns the canonical tag of d, e.g. "letter_analogy_hard".
// Unknown values render as "unknown_domain".
func (d Domain) String() string {
	if d >= domainCount {
		return "unknown_domain"
	}
	return domainTags[d]
}

// MarshalText implements encoding.TextMarshaler so Domain serializes as its
// canonical tag in JSON question dumps.
func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Meta carries the domain-specific named parameters of a generated
// question: sequence coefficients, grid geometry, cycle positions, and so
// on. It always contains every derived value the solver recomputes — and
// never the answer itself.
type Meta map[string]any

// Question is one generated puzzle. It is immutable once produced and is
// fully determined by (TestID, QuestionIdx); the answer is deliberately
// absent and must be recovered through the matching solver.
type Question struct {
	// TestID is the test identifier, in [1, NumTests].
	TestID int `json:"test_id"`

	// QuestionIdx is the 1-based question index, in [1, QuestionsPerTest].
	QuestionIdx int `json:"question_idx"`

	// Domain tags which of the nine families produced this question.
	Domain Domain `json:"domain"`

	// Prompt is the full human-readable puzzle text.
	Prompt string `json:"prompt"`

	// Meta holds the derived generation parameters for auditing.
	Meta Meta `json:"meta"`
}
