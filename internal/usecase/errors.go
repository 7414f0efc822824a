package usecase

import (
	"errors"
	"strings"
)

var (
	ErrClaimNotFound     = errors.New("claim not found")
	ErrInvalidClaimID    = errors.New("invalid claim id")
	ErrForbidden         = errors.New("caller role not allowed for this operation")
	ErrInvalidTransition = errors.New("invalid claim status transition")
	ErrClaimConflict     = errors.New("claim was modified concurrently")
	ErrClaimValidation   = errors.New("claim validation failed")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDocumentCrypto    = errors.New("document could not be decrypted")
	ErrSubmitterNotFound = errors.New("submitter profile not found")
)

// FieldError is one field-scoped validation problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every FieldError found for a single request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrClaimValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrClaimValidation
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// errOrNil returns nil when nothing was collected, so callers can
// `return v.errOrNil()` without a typed-nil interface.
func (e *ValidationError) errOrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
