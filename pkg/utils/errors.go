package utils

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus maps an error kind to the response code sent to clients.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a classified failure carrying the message shown to the user.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewFieldValidationError keeps per-field messages from ValidateStruct.
func NewFieldValidationError(message string, fields map[string]string) error {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NewAuthError(message string) error {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewForbiddenError(message string) error {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewInternalError(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf classifies err; anything not built by this package is internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// PublicMessage is the message safe to send back for err. Wrapped causes
// are never included.
func PublicMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
