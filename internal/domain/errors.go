package domain

import "fmt"

// NotFoundError represents a missing resource. Cross-owner lookups produce
// the same error as a genuinely absent document, so callers cannot tell
// "exists but not yours" apart from "does not exist".
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	if e.Kind == "" {
		return "not found"
	}
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationMismatchError reports that a requested id set did not fully
// resolve under the caller's owner scope.
type ValidationMismatchError struct {
	Requested int
	Resolved  int
}

func (e ValidationMismatchError) Error() string {
	return fmt.Sprintf("one or more contacts not found: requested %d, resolved %d", e.Requested, e.Resolved)
}

// Is enables errors.Is matching on ValidationMismatchError.
func (e ValidationMismatchError) Is(target error) bool {
	_, ok := target.(ValidationMismatchError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationMismatchError)
	return ok
}

// ErrValidationMismatch is the sentinel error for partial id resolution.
var ErrValidationMismatch = ValidationMismatchError{}

// ConflictError reports a uniqueness violation, such as registering an email
// that is already taken.
type ConflictError struct {
	Kind string
}

func (e ConflictError) Error() string {
	if e.Kind == "" {
		return "already exists"
	}
	return fmt.Sprintf("%s already exists", e.Kind)
}

// Is enables errors.Is matching on ConflictError.
func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

// ErrConflict is the sentinel error for uniqueness violations.
var ErrConflict = ConflictError{}

// InvalidRequestError reports input the caller can correct, such as missing
// required fields.
type InvalidRequestError struct {
	Message string
}

func (e InvalidRequestError) Error() string {
	if e.Message == "" {
		return "invalid request"
	}
	return e.Message
}

// Is enables errors.Is matching on InvalidRequestError.
func (e InvalidRequestError) Is(target error) bool {
	_, ok := target.(InvalidRequestError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidRequestError)
	return ok
}

// ErrInvalidRequest is the sentinel error for correctable bad input.
var ErrInvalidRequest = InvalidRequestError{}
