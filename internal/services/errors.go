package services

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNotFound    = errors.New("template_not_found")
	ErrContractNotFound    = errors.New("contract_not_found")
	ErrSignatureNotFound   = errors.New("signature_request_not_found")
	ErrSubmissionNotFound  = errors.New("submission_not_found")
	ErrDeclarationNotFound = errors.New("declaration_not_found")
	ErrInvalidState        = errors.New("invalid_state")
)

// InputError reports a rejected input, naming the offending field so the
// caller can surface it next to the form field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ValidationResult aggregates every violated rule instead of stopping at the
// first, so callers can present all problems at once. Warnings do not affect
// validity.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) finish() {
	r.Valid = len(r.Errors) == 0
}
