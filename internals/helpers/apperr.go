// file: internals/helpers/apperr.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Application error taxonomy
=================================*/

type ErrKind string

const (
	ErrKindNotFound   ErrKind = "NOT_FOUND"
	ErrKindValidation ErrKind = "VALIDATION_ERROR"
	ErrKindForbidden  ErrKind = "FORBIDDEN"
	ErrKindConflict   ErrKind = "CONFLICT"
	ErrKindNoMatch    ErrKind = "NO_MATCH"
	ErrKindDependency ErrKind = "DEPENDENCY_ERROR"
)

type AppError struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewNotFound(msg string) *AppError   { return &AppError{Kind: ErrKindNotFound, Message: msg} }
func NewValidation(msg string) *AppError { return &AppError{Kind: ErrKindValidation, Message: msg} }
func NewForbidden(msg string) *AppError  { return &AppError{Kind: ErrKindForbidden, Message: msg} }
func NewConflict(msg string) *AppError   { return &AppError{Kind: ErrKindConflict, Message: msg} }
func NewNoMatch(msg string) *AppError    { return &AppError{Kind: ErrKindNoMatch, Message: msg} }

// NewDependency wraps a storage/collaborator error; the message is surfaced
// verbatim to the caller.
func NewDependency(err error) *AppError {
	return &AppError{Kind: ErrKindDependency, Err: err}
}

func KindOf(err error) (ErrKind, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

func IsKind(err error, kind ErrKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func statusOfKind(kind ErrKind) int {
	switch kind {
	case ErrKindNotFound, ErrKindNoMatch:
		return fiber.StatusNotFound
	case ErrKindValidation:
		return fiber.StatusBadRequest
	case ErrKindForbidden:
		return fiber.StatusForbidden
	case ErrKindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonAppError renders an AppError with its taxonomy code; anything else
// falls through as a dependency error (surfaced verbatim).
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if !errors.As(err, &ae) {
		ae = NewDependency(err)
	}
	return c.Status(statusOfKind(ae.Kind)).JSON(ErrorResponse{
		Success:   false,
		Message:   ae.Error(),
		ErrorCode: string(ae.Kind),
	})
}
