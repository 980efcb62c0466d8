package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qverify/draft"
	"github.com/qubolab/qverify/parse"
	"github.com/qubolab/qverify/qubo"
	"github.com/qubolab/qverify/verify"
)

const sampleText = `variables: x1, x2, x3
minimize 3 x1 + 2 x2 + x1*x3
c_cap: x1 + x2 + x3 <= 2
solution: x1=1, x2=0, x3=0`

// warningCodes collects the codes present in a warning list.
func warningCodes(warnings []draft.Warning) map[string]bool {
	codes := map[string]bool{}
	for _, w := range warnings {
		codes[w.Code] = true
	}
	return codes
}

// TestTranslateText_FullExample extracts variables, a mixed objective, a
// labeled constraint, and a candidate assignment from one text block.
func TestTranslateText_FullExample(t *testing.T) {
	res := draft.TranslateText(sampleText)
	require.False(t, res.NeedsClarification, "warnings: %+v", res.Warnings)
	require.Empty(t, res.ClarificationQuestions)

	d := res.StructuredDraft
	require.Len(t, d.Variables, 3)
	assert.Equal(t, "x1", d.Variables[0].ID)

	assert.Equal(t, "min", d.Objective.Sense)
	require.Len(t, d.Objective.QuadraticTerms, 1)
	assert.Equal(t, draft.QuadraticTerm{VarI: "x1", VarJ: "x3", Coeff: 1}, d.Objective.QuadraticTerms[0])

	require.Len(t, d.Constraints, 1)
	assert.Equal(t, "c_cap", d.Constraints[0].Label)
	assert.Equal(t, "<=", d.Constraints[0].Sense)
	assert.Equal(t, 2.0, d.Constraints[0].RHS)

	require.Len(t, d.CandidateSolution, 3)
	assert.Equal(t, draft.Assignment{Var: "x1", Value: 1}, d.CandidateSolution[0])

	// The unit-coefficient quadratic term was an assumption, not a silent
	// default.
	assert.True(t, warningCodes(res.Warnings)["assumed_unit_coeff"])
}

// TestTranslateText_ProvenanceMetadata: every draft carries a source hash
// and schema version.
func TestTranslateText_ProvenanceMetadata(t *testing.T) {
	d := draft.TranslateText(sampleText).StructuredDraft
	assert.Len(t, d.Metadata["source_text_hash"], 64)
	assert.Equal(t, "v0.2", d.Metadata["draft_version"])
	assert.NotEmpty(t, d.Metadata["created_at"])
}

// TestTranslateText_EmptyInput blocks on every section with one question
// each.
func TestTranslateText_EmptyInput(t *testing.T) {
	res := draft.TranslateText("")
	require.True(t, res.NeedsClarification)
	codes := warningCodes(res.Warnings)
	for _, code := range []string{"missing_variables", "missing_objective", "missing_constraints", "missing_candidate_solution"} {
		assert.True(t, codes[code], code)
	}
	assert.Len(t, res.ClarificationQuestions, 4)
}

// TestTranslateText_MaximizeSense: "maximize" flips the draft sense.
func TestTranslateText_MaximizeSense(t *testing.T) {
	res := draft.TranslateText("variables: a, b\nmaximize 2 a + b\nc: a + b <= 1\nsolution: a=1 b=0")
	assert.Equal(t, "max", res.StructuredDraft.Objective.Sense)
}

// TestInferVariables: identifier words minus syntax keywords, sorted.
func TestInferVariables(t *testing.T) {
	vars := draft.InferVariables("Minimize z2 + z1 subject to st stuff")
	assert.Equal(t, []string{"stuff", "to", "z1", "z2"}, vars)
	assert.Empty(t, draft.InferVariables(""))
}

// TestValidateDraft_Normalizations covers dedup, sense defaulting, label
// fallback and dropping of unusable entries.
func TestValidateDraft_Normalizations(t *testing.T) {
	d := &draft.Draft{
		Variables: []draft.Variable{{ID: "a"}, {ID: "a"}, {ID: ""}, {ID: "b"}},
		Objective: draft.Objective{
			Sense:       "maximize",
			LinearTerms: []draft.LinearTerm{{Var: "a", Coeff: 1}},
		},
		Constraints: []draft.Constraint{
			{Sense: "<=", Terms: []draft.LinearTerm{{Var: "a", Coeff: 1}}, RHS: 1},
			{Sense: "<>", Terms: []draft.LinearTerm{{Var: "a", Coeff: 1}}, RHS: 1},
			{Sense: "==", Terms: nil, RHS: 0},
		},
		CandidateSolution: []draft.Assignment{
			{Var: "a", Value: 1},
			{Var: "b", Value: 2},
		},
	}
	warnings := draft.ValidateDraft(d)
	codes := warningCodes(warnings)

	assert.Len(t, d.Variables, 2, "duplicate and empty ids dropped")
	assert.True(t, codes["duplicate_var"])
	assert.True(t, codes["invalid_var"])

	assert.Equal(t, "min", d.Objective.Sense, "unknown sense defaults to min")
	assert.True(t, codes["invalid_objective_sense"])

	require.Len(t, d.Constraints, 1, "bad sense and empty constraints dropped")
	assert.Equal(t, "c0", d.Constraints[0].Label)
	assert.True(t, codes["invalid_constraint_sense"])
	assert.True(t, codes["empty_constraint"])

	require.Len(t, d.CandidateSolution, 1, "non-bit value dropped")
	assert.True(t, codes["invalid_candidate_value"])
	assert.NotNil(t, d.Metadata)
}

// TestToDocuments_BlockedDraft: a draft with no variables yields nil payloads
// and blocking warnings.
func TestToDocuments_BlockedDraft(t *testing.T) {
	d := &draft.Draft{}
	problemDoc, solutionDoc, warnings := draft.ToDocuments(d)
	assert.Nil(t, problemDoc)
	assert.Nil(t, solutionDoc)
	assert.True(t, draft.HasBlocking(warnings))
}

// TestToDocuments_MaxNegation: a max objective comes out negated with an
// info warning on record.
func TestToDocuments_MaxNegation(t *testing.T) {
	d := &draft.Draft{
		Variables: []draft.Variable{{ID: "a"}, {ID: "b"}},
		Objective: draft.Objective{
			Sense:       "max",
			LinearTerms: []draft.LinearTerm{{Var: "a", Coeff: 2}, {Var: "b", Coeff: 1}},
		},
		Constraints: []draft.Constraint{
			{Label: "cap", Sense: "<=", Terms: []draft.LinearTerm{{Var: "a", Coeff: 1}, {Var: "b", Coeff: 1}}, RHS: 1},
		},
		CandidateSolution: []draft.Assignment{{Var: "a", Value: 1}, {Var: "b", Value: 0}},
	}
	problemDoc, _, warnings := draft.ToDocuments(d)
	require.False(t, draft.HasBlocking(warnings), "warnings: %+v", warnings)
	assert.True(t, warningCodes(warnings)["objective_negated"])

	p, err := parse.Problem(problemDoc)
	require.NoError(t, err)
	assert.Equal(t, -2.0, p.Linear["a"])
	assert.Equal(t, -1.0, p.Linear["b"])
	assert.Equal(t, "max", p.Metadata["objective_sense"])
}

// TestToDocuments_GENormalization: ">=" constraints flip into "<=" form.
func TestToDocuments_GENormalization(t *testing.T) {
	d := &draft.Draft{
		Variables: []draft.Variable{{ID: "a"}, {ID: "b"}},
		Objective: draft.Objective{
			Sense:       "min",
			LinearTerms: []draft.LinearTerm{{Var: "a", Coeff: 1}},
		},
		Constraints: []draft.Constraint{
			{Label: "floor", Sense: ">=", Terms: []draft.LinearTerm{{Var: "a", Coeff: 1}, {Var: "b", Coeff: 1}}, RHS: 1},
		},
		CandidateSolution: []draft.Assignment{{Var: "a", Value: 1}, {Var: "b", Value: 0}},
	}
	problemDoc, _, warnings := draft.ToDocuments(d)
	require.False(t, draft.HasBlocking(warnings))
	assert.True(t, warningCodes(warnings)["normalized_ge_constraint"])

	p, err := parse.Problem(problemDoc)
	require.NoError(t, err)
	require.Len(t, p.Constraints, 1)
	assert.Equal(t, qubo.LinearIneq, p.Constraints[0].Type)
	assert.Equal(t, map[string]float64{"a": -1, "b": -1}, p.Constraints[0].LHS)
	assert.Equal(t, -1.0, p.Constraints[0].RHS)
}

// TestToDocuments_MissingCandidateValues blocks when the candidate does not
// cover the variable set.
func TestToDocuments_MissingCandidateValues(t *testing.T) {
	d := &draft.Draft{
		Variables: []draft.Variable{{ID: "a"}, {ID: "b"}},
		Objective: draft.Objective{Sense: "min", LinearTerms: []draft.LinearTerm{{Var: "a", Coeff: 1}}},
		Constraints: []draft.Constraint{
			{Label: "c", Sense: "<=", Terms: []draft.LinearTerm{{Var: "a", Coeff: 1}}, RHS: 1},
		},
		CandidateSolution: []draft.Assignment{{Var: "a", Value: 1}},
	}
	problemDoc, solutionDoc, warnings := draft.ToDocuments(d)
	assert.Nil(t, problemDoc)
	assert.Nil(t, solutionDoc)
	assert.True(t, warningCodes(warnings)["missing_candidate_values"])
}

// TestTextToVerification runs the whole pipeline: free text through draft,
// conversion, parsing, and a full verification.
func TestTextToVerification(t *testing.T) {
	res := draft.TranslateText(sampleText)
	require.False(t, res.NeedsClarification)

	d := res.StructuredDraft
	problemDoc, solutionDoc, warnings := draft.ToDocuments(&d)
	require.False(t, draft.HasBlocking(warnings), "warnings: %+v", warnings)

	problem, err := parse.Problem(problemDoc)
	require.NoError(t, err)
	solution, err := parse.Solution(solutionDoc, problem)
	require.NoError(t, err)
	assert.Equal(t, "approved_candidate", solution.Label)

	result := verify.Run(problem, solution, verify.Options{})
	assert.Equal(t, qubo.StatusFeasible, result.Feasibility.Status)
	assert.Equal(t, 3.0, result.Objective.Total, "x1 set: linear 3, quadratic needs x3")
}
