package domain

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidTimeValue ErrorCode = "INVALID_TIME_VALUE"
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// InvalidTimeValue reports a time-of-day, interval or offset that failed validation.
func InvalidTimeValue(format string, args ...any) *DomainError {
	return &DomainError{
		Code:       ErrorCodeInvalidTimeValue,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}
