// Package raven generates and solves the Raven-style 3×3 matrix
// questions of the bank (question_idx 56–70 of every test).
//
// Every cell (r, c), r,c ∈ {0,1,2}, carries three independent features
// derived by drift formulas from per-key bases:
//
//	shape_index       = (base_shape  +  r + 2c) mod 4   → ▲ ■ ● ★
//	orientation_index = (base_orient + 2r +  c) mod 4   → 0° 90° 180° 270°
//	fill_index        = (base_fill   +  r +  c) mod 3   → ○ ◐ ●
//
// A cell renders as "shape+fill(orientation°)", e.g. "▲○(0°)". One cell —
// bottom-right, center, or top-right by (test_id+local) mod 3 — is hidden
// behind " ? ", and one of four textual hints (flavor only) is attached.
// The solver evaluates the drift formulas at the hidden (r, c) directly;
// there is no search or rule inference.
package raven
