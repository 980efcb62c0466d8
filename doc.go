// Package qverify checks proposed 0/1 assignments against quadratic binary
// optimization problems (QUBO-style): constraint feasibility, objective
// scoring, best-known gap comparison, bit-flip sensitivity, and a small
// deterministic reference-solver suite.
//
// What lives where:
//
//	qubo/        - immutable value types: Problem, Constraint, Solution, results
//	parse/       - strict JSON document validation into qubo types
//	feasibility/ - per-constraint evaluation: satisfied / violated / binding
//	objective/   - linear + quadratic objective evaluation
//	compare/     - percentage gap against a recorded best-known value
//	sensitivity/ - single-bit-flip neighborhood scan, deterministically ordered
//	solvers/     - greedy pass, bounded brute force, placeholder anneal
//	report/      - fixed byte-stable textual report
//	verify/      - one verification run end to end, exit-code mapping
//	draft/       - rule-based text -> structured draft translator
//	bundle/      - tar.gz archives of failed runs for reproduction
//	server/      - HTTP facade shelling out to the verifier binary
//	logging/     - slog construction for the CLI and server surfaces
//	version/     - version string and bundle metadata
//	cmd/qverify/ - the CLI
//
// Every evaluation component is a pure function over caller-owned immutable
// inputs: no global state, no I/O, no hidden randomness. Identical inputs
// produce identical report bytes, which is the compatibility contract with
// other implementations of the same verifier.
package qverify
