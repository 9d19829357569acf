// Package cycle generates random Hamiltonian cycles on a square grid —
// the hidden solution loop of a puzzle instance.
//
// What:
//
//   - Generate(size, opts...) returns an ordered sequence of size² distinct
//     cells in which every consecutive pair, including last→first, is an
//     orthogonal neighbor.
//   - Validate(path, size) re-checks those invariants for any sequence.
//
// How — three phases, attempted in order, first success wins:
//
//  1. Warnsdorff greedy walks: repeat a small attempt budget; from a random
//     start, always step to the unvisited neighbor with the fewest onward
//     unvisited neighbors, breaking ties uniformly at random. Cheap, but
//     closing the loop fails most attempts.
//  2. Budgeted backtracking: from several shuffled start cells, an
//     explicit-stack depth-first search with randomized branch order and a
//     strict per-start iteration cap.
//  3. Deterministic fallback: a closed boustrophedon ring, constructible for
//     any grid with an even side, rotated by a random offset. Never fails.
//
// Rationale: a cheap usually-successful heuristic, backed by a reliable but
// slower exhaustive search, backed by a zero-cost guarantee. This bounds
// worst-case synchronous latency, which matters because generation runs on an
// interactive event loop. Randomized tie-breaking is what gives puzzle
// variety; a pure Warnsdorff walk would emit the same cycle every time.
//
// Determinism: all randomness flows from a single seeded source, so equal
// seeds reproduce equal paths (required for daily-puzzle mode).
//
// Complexity:
//
//   - Phase 1: O(attempts × n) for n = size² cells.
//   - Phase 2: O(starts × budget) worst case, budget-capped.
//   - Phase 3: O(n).
//
// Errors:
//
//   - ErrGridSize: size below the 2×2 minimum.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNotHamiltonian: Validate rejected a sequence.
package cycle
