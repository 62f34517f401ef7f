// Package numseq generates and solves the numeric-sequence questions of
// the bank (question_idx 1–15 of every test).
//
// Each question is a 7-term integer sequence
//
//	aₖ = base + α·k + β·k² + parity_offset(k),  k = 1..7
//
// with base, α, β and the two parity offsets all fixed modular functions
// of (test_id, local index). One strictly interior term (0-based position
// 2, 3 or 4) is hidden behind "?" in the prompt; the solver rebuilds the
// full sequence from the same formulas and returns the hidden value.
//
// The hidden slot is never the first or last term, so the rendered
// sequence always provides context on both sides.
package numseq
