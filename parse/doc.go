// Package parse loads and strictly validates problem and solution documents
// into qubo value types.
//
// The contract is all-or-nothing: either a fully validated Problem/Solution
// is returned, or a single *Error naming the offending field; no partially
// populated value ever escapes. Every rule fires here, before evaluation:
//
//   - variables: non-empty list of unique strings;
//   - linear: object over declared variables with numeric values;
//   - quadratic: [i, j, coeff] triples over declared variables, the unordered
//     pair unique after lexicographic normalization (a duplicate in either
//     order is a hard error, not a sum);
//   - constraints: recognized type tag, lhs over declared variables, numeric
//     rhs, label defaulting to "c<index>";
//   - best_known: numeric value required when present, label defaults;
//   - solution assignment: exactly the problem's variable set, each value the
//     integer literal 0 or 1 (0.0, 1.0, strings and booleans are rejected).
//
// Numbers are decoded through json.Number so the 0-or-1 rule can distinguish
// integer literals from float spellings of the same value.
package parse
