package parse

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/qubolab/qverify/qubo"
)

// Solution validates a solution document payload against an already-validated
// Problem. The assignment must cover exactly the problem's variable set, and
// every value must be the integer literal 0 or 1; numeric spellings like 1.0
// are rejected even though they compare equal.
func Solution(data []byte, problem *qubo.Problem) (*qubo.Solution, error) {
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	rawAssignment, ok := raw["assignment"].(map[string]any)
	if !ok {
		return nil, errf("assignment", "must be an object")
	}

	assignment := make(map[string]int, len(problem.Variables))
	for _, v := range problem.Variables {
		val, present := rawAssignment[v]
		if !present {
			return nil, errf("assignment."+v, "missing value for %q", v)
		}
		bit, ok := asBit(val)
		if !ok {
			return nil, errf("assignment."+v, "value for %q must be 0 or 1", v)
		}
		assignment[v] = bit
	}

	// Anything beyond the declared variable set is an error; report the
	// extras in sorted order so the message is stable.
	extra := make(map[string]bool)
	for k := range rawAssignment {
		if _, declared := assignment[k]; !declared {
			extra[k] = true
		}
	}
	if len(extra) > 0 {
		return nil, errf("assignment", "extra variables: %s", strings.Join(sortedKeys(extra), ", "))
	}

	label := "candidate"
	if rawLabel, present := raw["label"]; present && rawLabel != nil {
		s, ok := rawLabel.(string)
		if !ok {
			return nil, errf("label", "must be a string")
		}
		if s != "" {
			label = s
		}
	}

	metadata, err := validateMetadata(raw["metadata"], "metadata")
	if err != nil {
		return nil, err
	}

	return &qubo.Solution{Assignment: assignment, Label: label, Metadata: metadata}, nil
}

// LoadSolution reads path and delegates to Solution.
func LoadSolution(path string, problem *qubo.Problem) (*qubo.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errf("", "cannot read solution document: %v", err)
	}
	return Solution(data, problem)
}

// asBit accepts exactly the literals 0 and 1. json.Number keeps the original
// token, so "1.0" and "1" are distinguishable here.
func asBit(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	switch n.String() {
	case "0":
		return 0, true
	case "1":
		return 1, true
	}
	return 0, false
}
