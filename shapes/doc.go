// Package shapes generates and solves the coupled modular shape-count
// questions of the bank (question_idx 81–90 of every test).
//
// Two named symbols follow independent linear recurrences with distinct
// moduli:
//
//	count(k) = ((base + (k−1)·step) mod modulus), 0 remapped to modulus
//
// so residues live in [1, modulus]. All six scalars (modulus, base, step
// for each symbol) are fixed modular functions of (test_id, local), as
// are the two symbol glyphs. The generator shows figures 1–4 (k = 1..4)
// as counts of both symbols; the solver evaluates the recurrences at
// k = 5 and returns the pair (count_A(5), count_B(5)).
package shapes
