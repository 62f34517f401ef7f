// SPDX-License-Identifier: MIT
// Package core defines the shared vocabulary of the mensa test bank:
// the bank dimensions, the Domain enumeration with its fixed band
// partition of question indices, the Question and Answer value types,
// and index validation.
//
// Everything downstream — the nine domain packages and the bank entry
// points — is keyed off the immutable pair (test_id, question_idx):
//
//	test_id      ∈ [1, NumTests]          (1000 tests)
//	question_idx ∈ [1, QuestionsPerTest]  (100 questions per test)
//
// The band partition is the single structural invariant of the system:
// it maps question_idx ranges to domains identically for generation and
// solving, and changing it on one side only breaks correctness. The
// authoritative table lives in bands.go; DomainOf resolves it.
//
// Errors:
//
//	ErrIndexOutOfRange - test_id or question_idx outside its closed range.
//
// No other failure mode exists anywhere in the module: all downstream
// arithmetic is closed-form over bounded integers.
package core
