package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// The relay's whole error taxonomy. An unmapped webhook topic is deliberately
// absent: it is an authenticated no-op, not an error.
var (
	ErrSignatureMismatch = NewError("SIGNATURE_MISMATCH", "webhook verification failed", http.StatusUnauthorized)
	ErrMalformedPayload  = NewError("MALFORMED_PAYLOAD", "invalid JSON payload", http.StatusBadRequest)
	ErrValidation        = NewError("VALIDATION_ERROR", "validation failed", http.StatusBadRequest)
	ErrDeliveryFailed    = NewError("DELIVERY_FAILED", "conversion event delivery failed", http.StatusInternalServerError)
	ErrInternal          = NewError("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
)

type Error struct {
	Code    string
	Message string
	Status  int
	Details map[string]interface{}
	Cause   error
}

func NewError(code, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
		Details: make(map[string]interface{}),
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) WithCause(cause error) *Error {
	err := *e
	err.Cause = cause
	return &err
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	err := *e
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	err.Details = details
	return &err
}

func Wrap(err error, appErr *Error) *Error {
	if err == nil {
		return nil
	}
	return appErr.WithCause(err)
}

func IsSignatureMismatch(err error) bool {
	return hasCode(err, ErrSignatureMismatch.Code)
}

func IsMalformedPayload(err error) bool {
	return hasCode(err, ErrMalformedPayload.Code)
}

func IsDeliveryFailed(err error) bool {
	return hasCode(err, ErrDeliveryFailed.Code)
}

func hasCode(err error, code string) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func ToHTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// ToErrorResponse shapes an error for the webhook caller. Causes are kept out
// of the response body so upstream failures never echo credentials or payload
// fragments back to the source platform.
func ToErrorResponse(err error) map[string]interface{} {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal.WithCause(err)
	}

	response := map[string]interface{}{
		"error":      appErr.Message,
		"error_code": appErr.Code,
	}

	if len(appErr.Details) > 0 {
		response["details"] = appErr.Details
	}

	return response
}
