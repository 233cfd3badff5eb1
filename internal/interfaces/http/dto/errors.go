package dto

import "net/http"

// Error codes surfaced by the API. Domain codes pass through unchanged;
// the boundary adds its own codes for malformed input and unknown faults.
const (
	// ErrCodeValidation is used when input fails domain validation
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeNotFound is used when a referenced resource does not exist
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInsufficientStock is used when requested quantity exceeds stock
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	// ErrCodeStorage is used for persistence-layer failures
	ErrCodeStorage = "STORAGE_ERROR"
	// ErrCodeBadRequest is used for malformed or unparseable requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used when the error type is unknown
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	ErrCodeStorage:           http.StatusInternalServerError,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
