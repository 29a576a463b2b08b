package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Reconciliation error codes
const (
	// ErrCodeChannelRequired is used when an operation lacks a sales channel
	ErrCodeChannelRequired = "ERR_CHANNEL_REQUIRED"
	// ErrCodeChannelDisabled is used when the channel exists but sync is off
	ErrCodeChannelDisabled = "ERR_CHANNEL_DISABLED"
	// ErrCodeDuplicateParty is used when a remote customer id is already linked
	ErrCodeDuplicateParty = "ERR_DUPLICATE_PARTY"
	// ErrCodeAmbiguousMatch is used when stored refs are in a corrupt state
	ErrCodeAmbiguousMatch = "ERR_AMBIGUOUS_MATCH"
	// ErrCodePlatformUnavailable is used when the remote shop cannot be reached
	ErrCodePlatformUnavailable = "ERR_PLATFORM_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,
	ErrCodeConflict: http.StatusConflict,

	ErrCodeChannelRequired:     http.StatusUnprocessableEntity,
	ErrCodeChannelDisabled:     http.StatusUnprocessableEntity,
	ErrCodeDuplicateParty:      http.StatusConflict,
	ErrCodeAmbiguousMatch:      http.StatusInternalServerError,
	ErrCodePlatformUnavailable: http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
