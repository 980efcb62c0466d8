package parse

import "fmt"

// Error is the single parse-error class for both structural and semantic
// validation failures. Field names the offending document location using
// dotted/indexed paths ("quadratic[2]", "constraints[0].lhs.x1",
// "assignment.a"); it is empty for document-level failures such as malformed
// JSON.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return "parse: " + e.Reason
	}
	return fmt.Sprintf("parse: %s: %s", e.Field, e.Reason)
}

// errf builds an *Error with a formatted reason.
func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}
