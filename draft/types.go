package draft

// Severity grades a Warning. Error-severity warnings block conversion.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Warning records one observation made while translating, validating or
// converting a draft. Assumption documents what the pipeline decided on the
// user's behalf (e.g. a defaulted coefficient) so it can be reviewed.
type Warning struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	FieldPath  string   `json:"field_path,omitempty"`
	Assumption string   `json:"assumption,omitempty"`
}

// HasBlocking reports whether any warning carries error severity.
func HasBlocking(warnings []Warning) bool {
	for _, w := range warnings {
		if w.Severity == SeverityError {
			return true
		}
	}
	return false
}

func warn(code, message, fieldPath string) Warning {
	return Warning{Code: code, Message: message, Severity: SeverityWarn, FieldPath: fieldPath}
}

func errWarn(code, message, fieldPath string) Warning {
	return Warning{Code: code, Message: message, Severity: SeverityError, FieldPath: fieldPath}
}

func infoWarn(code, message, fieldPath, assumption string) Warning {
	return Warning{Code: code, Message: message, Severity: SeverityInfo, FieldPath: fieldPath, Assumption: assumption}
}

// Variable declares one binary decision variable.
type Variable struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// LinearTerm is one coeff*var term, used by both the objective and
// constraint left-hand sides.
type LinearTerm struct {
	Var   string  `json:"var"`
	Coeff float64 `json:"coeff"`
}

// QuadraticTerm is one coeff*var_i*var_j objective term.
type QuadraticTerm struct {
	VarI  string  `json:"var_i"`
	VarJ  string  `json:"var_j"`
	Coeff float64 `json:"coeff"`
}

// Objective holds the draft objective. Sense is "min" or "max"; conversion
// negates "max" coefficients because the engine always minimizes.
type Objective struct {
	Sense          string          `json:"sense"`
	LinearTerms    []LinearTerm    `json:"linear_terms"`
	QuadraticTerms []QuadraticTerm `json:"quadratic_terms"`
}

// Constraint is a draft constraint before conversion to the engine's closed
// type set. Sense is one of "<=", "==", ">=".
type Constraint struct {
	Label string       `json:"label"`
	Sense string       `json:"sense"`
	Terms []LinearTerm `json:"terms"`
	RHS   float64      `json:"rhs"`
}

// Assignment is one candidate-solution bit.
type Assignment struct {
	Var   string `json:"var"`
	Value int    `json:"value"`
}

// Draft is the structured intermediate between free text and the engine's
// document pair.
type Draft struct {
	Variables         []Variable        `json:"variables"`
	Objective         Objective         `json:"objective"`
	Constraints       []Constraint      `json:"constraints"`
	CandidateSolution []Assignment      `json:"candidate_solution"`
	Metadata          map[string]string `json:"metadata"`
}

// TranslationResult is what TranslateText hands back: the extracted draft,
// everything noteworthy that happened along the way, and, when extraction
// hit a blocking gap, the questions a user must answer before the draft can
// proceed.
type TranslationResult struct {
	StructuredDraft        Draft     `json:"structured_draft"`
	Warnings               []Warning `json:"warnings"`
	NeedsClarification     bool      `json:"needs_clarification"`
	ClarificationQuestions []string  `json:"clarification_questions,omitempty"`
}
