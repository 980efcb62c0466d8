package draft

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToDocuments converts a draft into the problem and solution documents the
// engine's parser accepts. The draft is validated first; any error-severity
// warning, from validation or from conversion itself, blocks the result
// (nil payloads, warnings explain why).
//
// Two normalizations happen here, both reported as info warnings so nothing
// is silent: maximization objectives are negated (the engine minimizes), and
// ">=" constraints are negated into the engine's "<=" form.
func ToDocuments(d *Draft) (problemDoc, solutionDoc []byte, warnings []Warning) {
	warnings = ValidateDraft(d)
	if HasBlocking(warnings) {
		return nil, nil, warnings
	}

	variables := make([]string, 0, len(d.Variables))
	declared := map[string]bool{}
	for _, v := range d.Variables {
		variables = append(variables, v.ID)
		declared[v.ID] = true
	}

	sign := 1.0
	if d.Objective.Sense == "max" {
		sign = -1
	}
	linear := map[string]float64{}
	for _, t := range d.Objective.LinearTerms {
		if !declared[t.Var] {
			warnings = append(warnings, errWarn("unknown_objective_var",
				fmt.Sprintf("Objective references unknown variable %s", t.Var), "objective"))
			continue
		}
		linear[t.Var] = t.Coeff * sign
	}
	quadratic := make([][]any, 0, len(d.Objective.QuadraticTerms))
	for _, t := range d.Objective.QuadraticTerms {
		if !declared[t.VarI] || !declared[t.VarJ] {
			warnings = append(warnings, errWarn("unknown_objective_var",
				fmt.Sprintf("Quadratic term references unknown variables %s, %s", t.VarI, t.VarJ), "objective"))
			continue
		}
		quadratic = append(quadratic, []any{t.VarI, t.VarJ, t.Coeff * sign})
	}
	if d.Objective.Sense == "max" {
		warnings = append(warnings, infoWarn("objective_negated",
			"Max objective coefficients negated for verifier (verifier assumes minimization).",
			"objective.sense",
			"Verifier expects minimization; transformed internally."))
	}

	constraints := make([]map[string]any, 0, len(d.Constraints))
	for _, c := range d.Constraints {
		lhs := map[string]float64{}
		for _, t := range c.Terms {
			if !declared[t.Var] {
				warnings = append(warnings, errWarn("unknown_constraint_var",
					fmt.Sprintf("Constraint references unknown variable %s", t.Var),
					fmt.Sprintf("constraints[%s]", c.Label)))
				continue
			}
			lhs[t.Var] = t.Coeff
		}
		rhs := c.RHS
		ctype := "linear_ineq"
		if c.Sense == "==" {
			ctype = "linear_eq"
		}
		if c.Sense == ">=" {
			for k, v := range lhs {
				lhs[k] = -v
			}
			rhs = -rhs
			warnings = append(warnings, infoWarn("normalized_ge_constraint",
				fmt.Sprintf("Constraint %s with >= converted to <= form for verifier.", c.Label),
				fmt.Sprintf("constraints[%s]", c.Label),
				"Verifier expects <= inequalities."))
		}
		constraints = append(constraints, map[string]any{
			"label": c.Label,
			"type":  ctype,
			"lhs":   lhs,
			"rhs":   rhs,
		})
	}

	candidate := map[string]int{}
	for _, a := range d.CandidateSolution {
		if !declared[a.Var] {
			warnings = append(warnings, errWarn("unknown_candidate_var",
				fmt.Sprintf("Candidate solution references unknown variable %s", a.Var), "candidate_solution"))
			continue
		}
		candidate[a.Var] = a.Value
	}
	var missing []string
	assignment := map[string]int{}
	for _, v := range variables {
		if bit, ok := candidate[v]; ok {
			assignment[v] = bit
		} else {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		warnings = append(warnings, errWarn("missing_candidate_values",
			"Candidate solution missing assignments for "+strings.Join(missing, ", "),
			"candidate_solution"))
	}

	if HasBlocking(warnings) {
		return nil, nil, warnings
	}

	metadata := map[string]string{}
	for k, v := range d.Metadata {
		metadata[k] = v
	}
	if _, ok := metadata["objective_sense"]; !ok {
		metadata["objective_sense"] = d.Objective.Sense
	}

	// json.Marshal emits map keys in sorted order, so both documents are
	// deterministic for identical drafts.
	problemDoc, _ = json.Marshal(map[string]any{
		"variables":   variables,
		"linear":      linear,
		"quadratic":   quadratic,
		"constraints": constraints,
		"metadata":    metadata,
	})
	solutionDoc, _ = json.Marshal(map[string]any{
		"label":      "approved_candidate",
		"assignment": assignment,
		"metadata":   map[string]string{"source": "ui"},
	})
	return problemDoc, solutionDoc, warnings
}
