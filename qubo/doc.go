// Package qubo defines the value types shared by every verifier component:
// the Problem/Solution pair consumed by a run and the result records the run
// produces.
//
// Design principles:
//   - Immutability by convention: a Problem or Solution is built once (by
//     package parse or by hand in tests) and never mutated afterwards. All
//     derived results are freshly computed values, so a single Problem may be
//     shared across many hypothetical Solutions without locking.
//   - Closed constraint-type set: the four tags are validated at parse time;
//     evaluation may assume exhaustiveness.
//   - One numeric tolerance: Tol governs every equality/inequality test in
//     the engine, as an absolute (not relative) bound.
package qubo
