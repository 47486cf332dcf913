package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrBusinessRule = errors.New("business rule violated")

	ErrAlreadyExists = errors.New("resource already exists")

	ErrConflict = errors.New("resource conflict")

	ErrDatabase = errors.New("database error")

	ErrInternalServer = errors.New("internal server error")
)

// Kind discriminates every failure the service can surface.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindBusinessRule
	KindInvalidArgument
	KindStorageConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "StructuralValidation"
	case KindNotFound:
		return "NotFound"
	case KindBusinessRule:
		return "BusinessRule"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindStorageConflict:
		return "StorageConflict"
	default:
		return "Internal"
	}
}

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return NewValidationErrors(map[string]string{field: message})
}

// AppError is the single error type raised by the domain and the boundary.
// Details is only populated for structural validation (field -> message).
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationErrors(fields map[string]string) error {
	details := make(map[string]string, len(fields))
	causes := make([]error, 0, len(fields)+1)
	causes = append(causes, ErrValidation)
	for field, msg := range fields {
		details[field] = msg
		causes = append(causes, &ValidationError{Field: field, Message: msg})
	}
	return &AppError{
		Kind:    KindValidation,
		Code:    "VALIDATION",
		Message: "request validation failed",
		Details: details,
		Cause:   errors.Join(causes...),
	}
}

func NewNotFound(message string) error {
	return &AppError{Kind: KindNotFound, Code: "NOT_FOUND", Message: message, Cause: ErrNotFound}
}

func NewBusinessRule(message string) error {
	return &AppError{Kind: KindBusinessRule, Code: "BUSINESS_RULE", Message: message, Cause: ErrBusinessRule}
}

func NewInvalidArgument(message string) error {
	return &AppError{Kind: KindInvalidArgument, Code: "INVALID_ARGUMENT", Message: message, Cause: ErrInvalidArgument}
}

// NewStorageConflict wraps a storage-enforced constraint violation. The cause
// should name the constraint, never carry the raw driver message.
func NewStorageConflict(cause error) error {
	return &AppError{
		Kind:    KindStorageConflict,
		Code:    "DB_CONFLICT",
		Message: "could not execute statement; data integrity constraint violated",
		Cause:   fmt.Errorf("%w: %w", ErrConflict, cause),
	}
}

func WrapDatabaseError(cause error, message string) error {
	return &AppError{
		Kind:    KindInternal,
		Code:    "DB_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrDatabase, cause),
	}
}

// KindOf resolves the kind of any error, wrapped or not. Plain sentinel
// errors produced by lower layers are mapped to their natural kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrBusinessRule):
		return KindBusinessRule
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return KindStorageConflict
	default:
		return KindInternal
	}
}
