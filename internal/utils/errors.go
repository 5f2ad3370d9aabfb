package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeNetworkError      ErrorCode = "NETWORK_ERROR"
	ErrorCodeNonSuccessStatus  ErrorCode = "NON_SUCCESS_STATUS"
	ErrorCodeParseError        ErrorCode = "PARSE_ERROR"
	ErrorCodeAuthExtraction    ErrorCode = "AUTH_EXTRACTION_ERROR"
	ErrorCodeJSONDecodeError   ErrorCode = "JSON_DECODE_ERROR"
	ErrorCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrorCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common error constructors
func NewNetworkError(url string, err error) *AppError {
	return NewErrorWithDetails(
		ErrorCodeNetworkError,
		"Request to target site failed",
		http.StatusBadGateway,
		map[string]interface{}{
			"url":   url,
			"cause": err.Error(),
		},
	)
}

func NewNonSuccessStatusError(url string, status int) *AppError {
	return NewErrorWithDetails(
		ErrorCodeNonSuccessStatus,
		fmt.Sprintf("Target site responded with status %d", status),
		http.StatusBadGateway,
		map[string]interface{}{
			"url":    url,
			"status": status,
		},
	)
}

func NewParseError(field string) *AppError {
	return NewError(
		ErrorCodeParseError,
		fmt.Sprintf("Expected field %s not found in markup", field),
		http.StatusUnprocessableEntity,
	)
}

func NewAuthExtractionError(id string) *AppError {
	return NewError(
		ErrorCodeAuthExtraction,
		fmt.Sprintf("Could not extract fetch URL or authorization token for ID %s", id),
		http.StatusUnprocessableEntity,
	)
}

func NewJSONDecodeError(url string, err error) *AppError {
	return NewErrorWithDetails(
		ErrorCodeJSONDecodeError,
		"Target site returned invalid JSON",
		http.StatusBadGateway,
		map[string]interface{}{
			"url":   url,
			"cause": err.Error(),
		},
	)
}

func NewInvalidRequestError(message string) *AppError {
	return NewError(
		ErrorCodeInvalidRequest,
		message,
		http.StatusBadRequest,
	)
}

func NewRateLimitError() *AppError {
	return NewError(
		ErrorCodeRateLimitExceeded,
		"Too many requests",
		http.StatusTooManyRequests,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
