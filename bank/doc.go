// SPDX-License-Identifier: MIT
// Package bank is the public surface of the mensa test bank: the two
// mirror entry points plus bulk helpers.
//
//	GenerateQuestion(testID, questionIdx) — render a puzzle, never its answer
//	SolveQuestion(testID, questionIdx)    — re-derive the unique answer
//
// Both validate their key against core's closed ranges and dispatch the
// question index over the fixed nine-band partition. The two dispatchers
// deliberately carry their own literal copy of the band boundaries — the
// generator/solver symmetry is the system's core invariant, and tests pin
// both switches against core.DomainOf for every index.
//
// Bulk helpers:
//
//	GenerateTest / SolveTest — all 100 questions/answers of one test, in order
//	AllTests                 — restartable iteration over the whole bank
//	GenerateAll              — whole-bank generation fanned out over workers
//
// Every call is pure and O(1)–O(100); the whole bank regenerates
// identically any number of times.
package bank
