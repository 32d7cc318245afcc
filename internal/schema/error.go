package schema

import "fmt"

type BookingErrorCode string

const (
	UpstreamError   BookingErrorCode = "UpstreamError"
	TimeoutError    BookingErrorCode = "TimeoutError"
	ConnectionError BookingErrorCode = "ConnectionError"
)

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required parameter: %s", e.Field)
}

func NewValidationError(field string) *ValidationError {
	return &ValidationError{
		Field: field,
	}
}

// BookingError is a terminal failure of the outbound booking call
type BookingError struct {
	Code       BookingErrorCode
	Message    string
	StatusCode int
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("Cal.com booking failed: %s", e.Message)
}

func NewUpstreamError(statusCode int, msg string) *BookingError {
	return &BookingError{
		Code:       UpstreamError,
		Message:    msg,
		StatusCode: statusCode,
	}
}

func NewTimeoutError(msg string) *BookingError {
	return &BookingError{
		Code:    TimeoutError,
		Message: msg,
	}
}

func NewConnectionError(msg string) *BookingError {
	return &BookingError{
		Code:    ConnectionError,
		Message: msg,
	}
}
