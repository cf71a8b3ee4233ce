package entity

import "errors"

// ValidationError reports malformed input, such as an empty title or a blank
// rejection reason.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// InvalidStateError reports an illegal entity transition, such as approving a
// work that already left moderation.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string { return e.Msg }

func NewInvalidState(msg string) error { return &InvalidStateError{Msg: msg} }

func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// ConflictError reports a uniqueness violation, such as a duplicate active
// borrow or a second pending librarian request.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflict(msg string) error { return &ConflictError{Msg: msg} }

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// NotFoundError reports a referenced id that does not resolve.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFound(msg string) error { return &NotFoundError{Msg: msg} }

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// AuthError reports a missing or insufficient authenticated identity.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func NewAuth(msg string) error { return &AuthError{Msg: msg} }

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}
