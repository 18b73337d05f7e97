// Package apierror provides the error taxonomy shared by services and the
// HTTP boundary, plus standardized response envelopes. All errors returned
// to clients go through this package to ensure consistency and to prevent
// leaking internal details (stack traces, DB errors, etc.).
package apierror

import "net/http"

// Kind classifies a service-layer failure. Every kind maps to exactly one
// HTTP status code at the boundary.
type Kind int

const (
	KindValidation     Kind = iota + 1 // missing or malformed input
	KindAuthentication                 // missing, invalid, or expired token
	KindAuthorization                  // valid identity, insufficient role
	KindNotFound                       // referenced entity absent
	KindStore                          // underlying persistence failure
)

// Error carries a kind and a short human-readable message. The message is
// the only detail ever surfaced to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status maps the kind to its HTTP status code. Authentication and
// authorization failures are structurally identical in the response body but
// distinguishable by status, so a denial never reveals whether the resource
// exists.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error     { return &Error{Kind: KindValidation, Message: msg} }
func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }
func Authorization(msg string) *Error  { return &Error{Kind: KindAuthorization, Message: msg} }
func NotFound(msg string) *Error       { return &Error{Kind: KindNotFound, Message: msg} }
func Store(msg string) *Error          { return &Error{Kind: KindStore, Message: msg} }

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}
