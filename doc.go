// Package loopline is the engine of a grid loop puzzle: players draw one
// closed loop on an N×N board so that every numeric hint — the count of loop
// bends in the hint's 3×3 neighborhood — is satisfied.
//
// 🚀 What is loopline?
//
//	A UI-free, deterministic puzzle core that brings together:
//		• Grid primitives: cell keys, adjacency, neighbor enumeration
//		• Solution generation: seeded Hamiltonian cycles in three phases
//		  (Warnsdorff walks → budgeted backtracking → deterministic fallback)
//		• Turn maps: bend derivation for solution paths and player graphs
//		• Hint sampling: probability-driven with spacing and count limits
//		• Gesture engine: drag, extend, backtrack, close-loop, tap-erase
//		• Validation: structural loop checks, hint checks, progress score
//		• Sessions: per-game state machine with persistence snapshots
//
// ✨ Why choose loopline?
//
//   - Deterministic – one seed reproduces the entire daily puzzle
//   - Total by design – noisy pointer input never errors, never panics
//   - Pure engine – rendering, storage, and timers stay outside, wired
//     through snapshots and change notifications
//
// Everything is organized under flat, single-concern packages:
//
//	grid/     — coordinate primitives shared by every other package
//	cycle/    — the Hamiltonian cycle generator
//	turns/    — bend-map derivation and 3×3 area counting
//	hint/     — hint-cell sampling
//	path/     — the player graph and the pointer-gesture state machine
//	validate/ — win checks and the progress score
//	session/  — one puzzle instance end to end
//
// Quick ASCII example of a won 4×4 board (+ marks bends, o straight cells):
//
//	+ o o +
//	o + + o
//	o + + o
//	+ o o +
//
// Dive into the package docs for algorithms, budgets, and contracts.
package loopline
