package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/qubolab/qverify/qubo"
)

// Problem validates a problem document payload and returns the immutable
// qubo.Problem it describes. Validation is staged: document shape first, then
// each section against the declared variable set, failing fast on the first
// offending field.
func Problem(data []byte) (*qubo.Problem, error) {
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	// Stage 1: the variable universe everything else is checked against.
	variables, err := validateVariables(raw["variables"])
	if err != nil {
		return nil, err
	}
	declared := make(map[string]bool, len(variables))
	for _, v := range variables {
		declared[v] = true
	}

	// Stage 2: objective terms.
	linear, err := validateLinear(raw["linear"], declared)
	if err != nil {
		return nil, err
	}
	quadratic, err := validateQuadratic(raw["quadratic"], declared)
	if err != nil {
		return nil, err
	}

	// Stage 3: constraints, best-known, metadata.
	constraints, err := validateConstraints(raw["constraints"], declared)
	if err != nil {
		return nil, err
	}
	bestKnown, err := validateBestKnown(raw["best_known"])
	if err != nil {
		return nil, err
	}
	metadata, err := validateMetadata(raw["metadata"], "metadata")
	if err != nil {
		return nil, err
	}

	return &qubo.Problem{
		Variables:   variables,
		Linear:      linear,
		Quadratic:   quadratic,
		Constraints: constraints,
		BestKnown:   bestKnown,
		Metadata:    metadata,
	}, nil
}

// LoadProblem reads path and delegates to Problem.
func LoadProblem(path string) (*qubo.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errf("", "cannot read problem document: %v", err)
	}
	return Problem(data)
}

// decodeObject parses a JSON object, keeping numbers as json.Number so value
// domain rules can inspect the original literal.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errf("", "invalid JSON: %v", err)
	}
	return raw, nil
}

// asNumber unwraps a JSON numeric value. Anything that was not a number
// literal in the document (strings, booleans, null) fails.
func asNumber(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func validateVariables(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, errf("variables", "must be a non-empty list")
	}
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for idx, item := range list {
		id, ok := item.(string)
		if !ok {
			return nil, errf(fmt.Sprintf("variables[%d]", idx), "variable ids must be strings")
		}
		if seen[id] {
			return nil, errf(fmt.Sprintf("variables[%d]", idx), "duplicate variable id %q", id)
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func validateLinear(v any, declared map[string]bool) (map[string]float64, error) {
	if v == nil {
		return map[string]float64{}, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errf("linear", "must be an object")
	}
	out := make(map[string]float64, len(obj))
	for id, val := range obj {
		if !declared[id] {
			return nil, errf("linear."+id, "references unknown variable %q", id)
		}
		f, ok := asNumber(val)
		if !ok {
			return nil, errf("linear."+id, "coefficient must be a number")
		}
		out[id] = f
	}
	return out, nil
}

func validateQuadratic(v any, declared map[string]bool) (map[qubo.VarPair]float64, error) {
	if v == nil {
		return map[qubo.VarPair]float64{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errf("quadratic", "must be an array of [i, j, coefficient] triples")
	}
	out := make(map[qubo.VarPair]float64, len(list))
	for idx, item := range list {
		field := fmt.Sprintf("quadratic[%d]", idx)
		entry, ok := item.([]any)
		if !ok || len(entry) != 3 {
			return nil, errf(field, "entries must be [i, j, coefficient]")
		}
		i, iok := entry[0].(string)
		j, jok := entry[1].(string)
		if !iok || !jok {
			return nil, errf(field, "variable ids must be strings")
		}
		if !declared[i] || !declared[j] {
			return nil, errf(field, "references unknown variables %q, %q", i, j)
		}
		coeff, ok := asNumber(entry[2])
		if !ok {
			return nil, errf(field, "coefficient for %s,%s must be a number", i, j)
		}
		pair := qubo.NewVarPair(i, j)
		if _, dup := out[pair]; dup {
			return nil, errf(field, "duplicate quadratic entry for (%s, %s)", pair.I, pair.J)
		}
		out[pair] = coeff
	}
	return out, nil
}

func validateConstraints(v any, declared map[string]bool) ([]qubo.Constraint, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errf("constraints", "must be an array")
	}
	out := make([]qubo.Constraint, 0, len(list))
	for idx, item := range list {
		field := fmt.Sprintf("constraints[%d]", idx)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errf(field, "must be an object")
		}
		ctype, _ := obj["type"].(string)
		if !qubo.ConstraintType(ctype).Valid() {
			return nil, errf(field+".type", "invalid constraint type %q", ctype)
		}
		label, _ := obj["label"].(string)
		if label == "" {
			label = fmt.Sprintf("c%d", idx)
		}
		lhs := map[string]float64{}
		if rawLHS, present := obj["lhs"]; present && rawLHS != nil {
			lhsObj, ok := rawLHS.(map[string]any)
			if !ok {
				return nil, errf(field+".lhs", "constraint %s lhs must be an object", label)
			}
			for id, val := range lhsObj {
				if !declared[id] {
					return nil, errf(field+".lhs."+id, "constraint %s references unknown variable %q", label, id)
				}
				coeff, ok := asNumber(val)
				if !ok {
					return nil, errf(field+".lhs."+id, "constraint %s coefficient must be a number", label)
				}
				lhs[id] = coeff
			}
		}
		rhs := 0.0
		if rawRHS, present := obj["rhs"]; present {
			f, ok := asNumber(rawRHS)
			if !ok {
				return nil, errf(field+".rhs", "constraint %s rhs must be a number", label)
			}
			rhs = f
		}
		out = append(out, qubo.Constraint{
			Label: label,
			Type:  qubo.ConstraintType(ctype),
			LHS:   lhs,
			RHS:   rhs,
		})
	}
	return out, nil
}

func validateBestKnown(v any) (*qubo.BestKnown, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errf("best_known", "must be an object")
	}
	rawValue, present := obj["value"]
	if !present {
		return nil, errf("best_known.value", "missing value")
	}
	value, ok := asNumber(rawValue)
	if !ok {
		return nil, errf("best_known.value", "must be a number")
	}
	label := "best_known"
	if rawLabel, present := obj["label"]; present {
		s, ok := rawLabel.(string)
		if !ok {
			return nil, errf("best_known.label", "must be a string")
		}
		label = s
	}
	return &qubo.BestKnown{Value: value, Label: label}, nil
}

func validateMetadata(v any, field string) (map[string]string, error) {
	if v == nil {
		return map[string]string{}, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errf(field, "must be an object")
	}
	out := make(map[string]string, len(obj))
	for k, raw := range obj {
		s, ok := raw.(string)
		if !ok {
			return nil, errf(field+"."+k, "metadata values must be strings")
		}
		out[k] = s
	}
	return out, nil
}

// sortedKeys returns map keys in lexicographic order, for deterministic
// error messages over unordered sets.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
