// Package apierror provides the standardized error responses for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, SQL errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Sentinel errors returned by the service layer. Handlers translate them to
// HTTP statuses via Status; anything unrecognized becomes a 500.
var (
	ErrUnauthorized = errors.New("não autenticado")
	ErrForbidden    = errors.New("permissão insuficiente")
	ErrNotFound     = errors.New("registro não encontrado")
	ErrConflict     = errors.New("registro duplicado")
	ErrNoFields     = errors.New("nenhum campo para atualizar")
)

// Status maps a service-layer error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNoFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WithMessage keeps err in the chain (so Status still resolves it) while
// presenting msg to the client.
func WithMessage(err error, msg string) error {
	return &wrapped{err: err, msg: msg}
}

type wrapped struct {
	err error
	msg string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.err }

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// FieldError describes a single violated field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field, not just the first.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func NewValidation(fields []FieldError) *ValidationError {
	return &ValidationError{Errors: fields}
}
