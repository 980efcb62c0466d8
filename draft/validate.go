package draft

import "fmt"

// ValidateDraft normalizes d in place (dropping entries that cannot be
// repaired, defaulting labels) and returns every observation made. Callers
// must treat HasBlocking(warnings) as a hard stop: a blocked draft must not
// be converted or evaluated.
func ValidateDraft(d *Draft) []Warning {
	warnings := []Warning{}

	// Variables: unique non-empty ids, order preserved.
	seen := map[string]bool{}
	cleanVars := make([]Variable, 0, len(d.Variables))
	for idx, v := range d.Variables {
		if v.ID == "" {
			warnings = append(warnings, errWarn("invalid_var",
				"Variable id must be a non-empty string", fmt.Sprintf("variables[%d]", idx)))
			continue
		}
		if seen[v.ID] {
			warnings = append(warnings, errWarn("duplicate_var",
				fmt.Sprintf("Duplicate variable id %s", v.ID), fmt.Sprintf("variables[%d]", idx)))
			continue
		}
		seen[v.ID] = true
		cleanVars = append(cleanVars, v)
	}
	if len(cleanVars) == 0 {
		warnings = append(warnings, errWarn("no_variables", "No valid variables provided", "variables"))
	}
	d.Variables = cleanVars

	// Objective sense and terms.
	if d.Objective.Sense != "min" && d.Objective.Sense != "max" {
		warnings = append(warnings, errWarn("invalid_objective_sense",
			"Objective sense must be 'min' or 'max'", "objective.sense"))
		d.Objective.Sense = "min"
	}
	cleanLinear := make([]LinearTerm, 0, len(d.Objective.LinearTerms))
	for idx, t := range d.Objective.LinearTerms {
		if t.Var == "" {
			warnings = append(warnings, errWarn("invalid_var_ref",
				"Objective term variable must be a string",
				fmt.Sprintf("objective.linear_terms[%d].var", idx)))
			continue
		}
		cleanLinear = append(cleanLinear, t)
	}
	d.Objective.LinearTerms = cleanLinear
	cleanQuad := make([]QuadraticTerm, 0, len(d.Objective.QuadraticTerms))
	for idx, t := range d.Objective.QuadraticTerms {
		if t.VarI == "" || t.VarJ == "" {
			warnings = append(warnings, errWarn("invalid_var_ref",
				"Quadratic term variables must be strings",
				fmt.Sprintf("objective.quadratic_terms[%d]", idx)))
			continue
		}
		cleanQuad = append(cleanQuad, t)
	}
	d.Objective.QuadraticTerms = cleanQuad
	if len(cleanLinear) == 0 && len(cleanQuad) == 0 {
		warnings = append(warnings, errWarn("empty_objective", "Objective has no terms", "objective"))
	}

	// Constraints: known sense, at least one usable term, defaulted labels.
	cleanConstraints := make([]Constraint, 0, len(d.Constraints))
	for idx, c := range d.Constraints {
		if c.Sense != "<=" && c.Sense != "==" && c.Sense != ">=" {
			warnings = append(warnings, errWarn("invalid_constraint_sense",
				"Constraint sense must be <=, ==, or >=", fmt.Sprintf("constraints[%d].sense", idx)))
			continue
		}
		if c.Label == "" {
			c.Label = fmt.Sprintf("c%d", idx)
		}
		cleanTerms := make([]LinearTerm, 0, len(c.Terms))
		for jdx, t := range c.Terms {
			if t.Var == "" {
				warnings = append(warnings, errWarn("invalid_var_ref",
					"Constraint term variable must be string",
					fmt.Sprintf("constraints[%d].terms[%d]", idx, jdx)))
				continue
			}
			cleanTerms = append(cleanTerms, t)
		}
		if len(cleanTerms) == 0 {
			warnings = append(warnings, errWarn("empty_constraint",
				fmt.Sprintf("Constraint %s has no terms", c.Label), fmt.Sprintf("constraints[%d]", idx)))
			continue
		}
		c.Terms = cleanTerms
		cleanConstraints = append(cleanConstraints, c)
	}
	if len(cleanConstraints) == 0 {
		warnings = append(warnings, errWarn("no_constraints", "No valid constraints provided", "constraints"))
	}
	d.Constraints = cleanConstraints

	// Candidate bits.
	cleanAssignments := make([]Assignment, 0, len(d.CandidateSolution))
	for idx, a := range d.CandidateSolution {
		if a.Var == "" {
			warnings = append(warnings, errWarn("invalid_var_ref",
				"Candidate solution var must be string", fmt.Sprintf("candidate_solution[%d]", idx)))
			continue
		}
		if a.Value != 0 && a.Value != 1 {
			warnings = append(warnings, errWarn("invalid_candidate_value",
				"Candidate solution values must be 0 or 1", fmt.Sprintf("candidate_solution[%d]", idx)))
			continue
		}
		cleanAssignments = append(cleanAssignments, a)
	}
	if len(cleanAssignments) == 0 {
		warnings = append(warnings, errWarn("no_candidate_solution",
			"No valid candidate solution provided", "candidate_solution"))
	}
	d.CandidateSolution = cleanAssignments

	if d.Metadata == nil {
		d.Metadata = map[string]string{}
	}
	return warnings
}
