// Package draft turns loosely structured problem descriptions into the
// document pair the verification engine consumes.
//
// The pipeline has three explicit stages, each independently testable:
//
//	TranslateText - rule-based regex extraction of variables, objective,
//	                constraints and a candidate assignment from free text;
//	ValidateDraft - normalization of a structured draft plus warnings;
//	ToDocuments   - conversion of a clean draft into problem/solution JSON,
//	                negating maximization objectives and >= constraints into
//	                the engine's minimize/<= form.
//
// Every stage reports through Warning records (code, message, severity,
// optional field path and assumption text). Any warning of severity error
// blocks conversion: the engine never runs on a draft that failed validation.
// The extractor is deliberately dumb: regex rules, with no inference beyond
// the documented variable fallback, so its assumptions stay auditable.
package draft
