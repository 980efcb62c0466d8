// Package solvers provides the deterministic reference-solver suite used to
// benchmark candidate solutions: a greedy single-pass improver, an exact
// brute-force scan bounded by a state cap, and a placeholder anneal.
//
// Determinism contracts:
//   - No solver uses non-reproducible randomness; the one RNG in the package
//     is seeded from an explicit Options.Seed (default 0), never from time.
//   - Greedy visits variables in Problem declaration order, once.
//   - Brute force enumerates assignments by standard binary counting over
//     the variable list.
//   - Anneal's output equals Greedy's for identical input: it is a
//     documented stand-in, not a metaheuristic.
//
// No solver errors for a Problem that passed validation: outcomes are either
// a numeric objective total or nil (brute force skipped by the cap, or no
// feasible assignment exists).
package solvers
