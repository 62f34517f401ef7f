// Package mensa is a deterministic generator and solver for a synthetic
// Mensa-style test bank — 1000 tests × 100 questions, every question and
// every answer derived purely from the pair (test_id, question_idx).
//
// 🚀 What is mensa?
//
//	A pure-arithmetic content engine with two mirror halves:
//		• Generator: renders a human-readable puzzle (prompt + metadata)
//		  from (test_id, question_idx) — never computes the answer
//		• Solver: re-derives the same latent parameters with identical
//		  formulas and reduces them to the unique correct answer
//
// ✨ Why choose mensa?
//
//   - Fully deterministic – no randomness, no state, no I/O
//   - Embarrassingly parallel – every call reads two ints and constants
//   - Auditable – question metadata carries every derived parameter
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized per question domain:
//
//	bank/     — public entry points, bulk generation, whole-bank iteration
//	core/     — Question, Answer, Domain, band partition, validation
//	numseq/   — Q 1–15:   numeric sequences (linear+quadratic+parity)
//	logic/    — Q 16–25:  nested propositional logic
//	arrows/   — Q 26–35:  dual arrow cycles
//	letters/  — Q 36–45:  affine letter analogies over Z26
//	wordmath/ — Q 46–55:  layered word-arithmetic stories
//	raven/    — Q 56–70:  Raven-style 3×3 feature matrices
//	baseconv/ — Q 71–80:  cross-base number puzzles
//	shapes/   — Q 81–90:  coupled modular shape-count sequences
//	selfref/  — Q 91–100: self-referential counting questions
//
// Quick example:
//
//	q, _ := bank.GenerateQuestion(1, 36)  // letter-analogy puzzle text
//	a, _ := bank.SolveQuestion(1, 36)     // → "J"
//
//	go get github.com/katalvlaran/mensa
package mensa
