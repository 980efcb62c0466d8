package draft

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// draftVersion tags drafts so consumers can detect schema drift.
const draftVersion = "v0.2"

var (
	quadTermRe   = regexp.MustCompile(`([+-]?\s*\d*\.?\d*)\s*([A-Za-z][A-Za-z0-9_]*)\s*[*x]\s*([A-Za-z][A-Za-z0-9_]*)`)
	linearTermRe = regexp.MustCompile(`([+-]?\s*\d*\.?\d*)\s*([A-Za-z][A-Za-z0-9_]*)`)
	varsLineRe   = regexp.MustCompile(`(?i)^(variables|vars)\s*[:\-]\s*(.+)$`)
	varSplitRe   = regexp.MustCompile(`[\s,]+`)
	wordRe       = regexp.MustCompile(`\b([A-Za-z][A-Za-z0-9_]*)\b`)
	objectiveRe  = regexp.MustCompile(`(?i)(minimize|maximize|objective)`)
	objWordRe    = regexp.MustCompile(`(?i)objective\s*[:\-]*`)
	senseWordRe  = regexp.MustCompile(`(?i)(minimize|maximize|min|max)\s*`)
	constraintRe = regexp.MustCompile(`^(?:(?P<label>[A-Za-z0-9_\-]+)\s*:\s*)?(?P<body>.+?)\s*(?P<sense><=|>=|==)\s*(?P<rhs>[-+]?\d*\.?\d+)`)
	minSenseRe   = regexp.MustCompile(`(?i)min`)
	maxSenseRe   = regexp.MustCompile(`(?i)max`)
	solutionRe   = regexp.MustCompile(`(?i)(solution|assignment)`)
	bitPairRe    = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_]*)\s*=?\s*([01])`)
)

// emptyDraft seeds a draft with provenance metadata for the given source
// text.
func emptyDraft(text string) Draft {
	sum := sha256.Sum256([]byte(text))
	return Draft{
		Variables:   []Variable{},
		Objective:   Objective{Sense: "min", LinearTerms: []LinearTerm{}, QuadraticTerms: []QuadraticTerm{}},
		Constraints: []Constraint{},
		Metadata: map[string]string{
			"source_text_hash": hex.EncodeToString(sum[:]),
			"draft_version":    draftVersion,
			"created_at":       time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
}

// parseCoeff interprets a raw coefficient capture. Empty or bare-sign
// captures mean an implicit unit coefficient and produce a warn-severity
// record; unparseable text produces an error-severity record and ok=false.
func parseCoeff(raw, fieldPath, termDesc string, warnings *[]Warning) (coeff float64, ok bool) {
	raw = strings.ReplaceAll(raw, " ", "")
	switch raw {
	case "", "+", "-":
		coeff = 1
		if raw == "-" {
			coeff = -1
		}
		w := warn("assumed_unit_coeff", "Assumed coefficient 1 for "+termDesc, fieldPath)
		w.Assumption = "No explicit coefficient found; defaulted to 1"
		*warnings = append(*warnings, w)
		return coeff, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*warnings = append(*warnings, errWarn("invalid_coeff",
			fmt.Sprintf("Could not parse coefficient %q for %s", raw, termDesc), fieldPath))
		return 0, false
	}
	return f, true
}

// parseLinearTerms extracts coeff*var terms from a simple expression like
// "3 x1 - x2 + 2x3".
func parseLinearTerms(expr string) ([]LinearTerm, []Warning) {
	var (
		terms    []LinearTerm
		warnings []Warning
	)
	for _, m := range linearTermRe.FindAllStringSubmatch(expr, -1) {
		v := m[2]
		coeff, ok := parseCoeff(m[1],
			fmt.Sprintf("objective.linear_terms[%s]", v),
			"term with variable "+v, &warnings)
		if !ok {
			continue
		}
		terms = append(terms, LinearTerm{Var: v, Coeff: coeff})
	}
	return terms, warnings
}

func parseQuadraticTerms(expr string) ([]QuadraticTerm, []Warning) {
	var (
		terms    []QuadraticTerm
		warnings []Warning
	)
	for _, m := range quadTermRe.FindAllStringSubmatch(expr, -1) {
		i, j := m[2], m[3]
		coeff, ok := parseCoeff(m[1],
			fmt.Sprintf("objective.quadratic_terms[%s,%s]", i, j),
			fmt.Sprintf("quadratic term %s*%s", i, j), &warnings)
		if !ok {
			continue
		}
		terms = append(terms, QuadraticTerm{VarI: i, VarJ: j, Coeff: coeff})
	}
	return terms, warnings
}

// parseConstraintLine extracts "label: 2 x1 + x2 <= 3" style lines. A nil
// constraint means the line did not match the shape at all.
func parseConstraintLine(line string) (*Constraint, []Warning) {
	m := constraintRe.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}
	groups := map[string]string{}
	for i, name := range constraintRe.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	rhs, err := strconv.ParseFloat(groups["rhs"], 64)
	if err != nil {
		return nil, nil
	}
	terms, warnings := parseLinearTerms(groups["body"])
	return &Constraint{
		Label: groups["label"],
		Sense: groups["sense"],
		Terms: terms,
		RHS:   rhs,
	}, warnings
}

// InferVariables is the fallback policy used when the text declares no
// explicit "variables:" line: every identifier-shaped word becomes a
// candidate, minus the keywords of the supported syntax, sorted for
// determinism. It is deliberately exposed as its own function: the fallback
// is an inference policy with consequences, not an implementation detail.
func InferVariables(text string) []string {
	stop := map[string]bool{"minimize": true, "maximize": true, "subject": true, "st": true}
	seen := map[string]bool{}
	for _, m := range wordRe.FindAllStringSubmatch(text, -1) {
		if !stop[strings.ToLower(m[1])] {
			seen[m[1]] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// stripFirst removes the first match of re from s.
func stripFirst(re *regexp.Regexp, s string) string {
	if loc := re.FindStringIndex(s); loc != nil {
		return s[:loc[0]] + s[loc[1]:]
	}
	return s
}

// TranslateText runs the rule-based extractor over free text and returns the
// structured draft plus everything it had to assume or could not find.
// Blocking gaps set NeedsClarification and attach one question per gap.
func TranslateText(text string) TranslationResult {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	warnings := []Warning{}
	var questions []string
	d := emptyDraft(text)

	// Variables: explicit declarations first, inference fallback second.
	var varsFound []string
	for _, line := range lines {
		if m := varsLineRe.FindStringSubmatch(line); m != nil {
			for _, tok := range varSplitRe.Split(m[2], -1) {
				if tok = strings.TrimSpace(tok); tok != "" {
					varsFound = append(varsFound, tok)
				}
			}
		}
	}
	if len(varsFound) == 0 {
		varsFound = InferVariables(text)
	}
	for _, v := range varsFound {
		d.Variables = append(d.Variables, Variable{ID: v})
	}
	if len(varsFound) == 0 {
		warnings = append(warnings, errWarn("missing_variables",
			"Could not find any variable definitions.", "variables"))
		questions = append(questions, "List the binary decision variables (e.g., x1, x2).")
	}

	// Objective: first line mentioning minimize/maximize/objective.
	var objectiveLine string
	for _, line := range lines {
		if objectiveRe.MatchString(line) {
			objectiveLine = line
			break
		}
	}
	if objectiveLine != "" {
		switch {
		case minSenseRe.MatchString(objectiveLine):
			d.Objective.Sense = "min"
		case maxSenseRe.MatchString(objectiveLine):
			d.Objective.Sense = "max"
		}
		body := objWordRe.ReplaceAllString(objectiveLine, "")
		body = stripFirst(senseWordRe, body)

		quadTerms, quadWarnings := parseQuadraticTerms(body)
		linearBody := quadTermRe.ReplaceAllString(body, " ")
		linearTerms, termWarnings := parseLinearTerms(linearBody)

		warnings = append(warnings, termWarnings...)
		warnings = append(warnings, quadWarnings...)
		d.Objective.LinearTerms = append(d.Objective.LinearTerms, linearTerms...)
		d.Objective.QuadraticTerms = append(d.Objective.QuadraticTerms, quadTerms...)
		if len(linearTerms) == 0 && len(quadTerms) == 0 {
			warnings = append(warnings, errWarn("missing_objective_terms",
				"Objective found but no terms parsed.", "objective"))
			questions = append(questions, "Provide objective terms like 'minimize 3 x1 + 2 x2'.")
		}
	} else {
		warnings = append(warnings, errWarn("missing_objective",
			"Could not locate an objective (minimize/maximize).", "objective"))
		questions = append(questions, "Specify an objective, e.g., 'Minimize 2 x1 + 3 x2'.")
	}

	// Constraints: any line containing a comparison operator.
	for _, line := range lines {
		if !strings.Contains(line, "<=") && !strings.Contains(line, ">=") && !strings.Contains(line, "==") {
			continue
		}
		c, cw := parseConstraintLine(line)
		warnings = append(warnings, cw...)
		if c != nil {
			d.Constraints = append(d.Constraints, *c)
		}
	}
	if len(d.Constraints) == 0 {
		warnings = append(warnings, errWarn("missing_constraints",
			"No constraints with <=, >=, or == were parsed.", "constraints"))
		questions = append(questions, "Provide at least one constraint using <=, ==, or >=.")
	}

	// Candidate assignment: var=bit pairs on solution/assignment lines.
	for _, line := range lines {
		if !solutionRe.MatchString(line) {
			continue
		}
		for _, m := range bitPairRe.FindAllStringSubmatch(line, -1) {
			value := 0
			if m[2] == "1" {
				value = 1
			}
			d.CandidateSolution = append(d.CandidateSolution, Assignment{Var: m[1], Value: value})
		}
	}
	if len(d.CandidateSolution) == 0 {
		warnings = append(warnings, errWarn("missing_candidate_solution",
			"No candidate solution assignments were extracted.", "candidate_solution"))
		questions = append(questions, "Provide a candidate solution like 'solution: x1=1, x2=0'.")
	}

	result := TranslationResult{
		StructuredDraft:    d,
		Warnings:           warnings,
		NeedsClarification: HasBlocking(warnings),
	}
	if result.NeedsClarification {
		result.ClarificationQuestions = questions
	}
	return result
}
