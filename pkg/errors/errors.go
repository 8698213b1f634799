package errors

import "net/http"

// RequestError is an error with a fixed HTTP status and message, rendered
// verbatim into the error envelope at the handler boundary.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewRequestError(status int, message string) *RequestError {
	return &RequestError{
		Status:  status,
		Message: message,
	}
}

func NewNotFound(message string) *RequestError {
	return NewRequestError(http.StatusNotFound, message)
}

var (
	ErrUserAlreadyExists  = NewRequestError(http.StatusBadRequest, "User Already Exist")
	ErrInvalidCredentials = NewRequestError(http.StatusBadRequest, "username or password is wrong")
	ErrUnauthorized       = NewRequestError(http.StatusUnauthorized, "Unauthorized")
)

// FieldViolation names a single invalid request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field violations for a request.
// It maps to a 400 response whose errors payload is the violation list.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Violations[0].Field + " " + e.Violations[0].Message
}

func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}
