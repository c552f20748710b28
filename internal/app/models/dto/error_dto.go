package dto

// ErrorCode defines standardized error codes for the API
type ErrorCode string

// Error code constants
const (
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeInternalServer   ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail contains detailed error information
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VALIDATION_FAILED"`
	Message string    `json:"message" example:"Please provide all required fields"`
}

// ErrorResponse represents a standardized error response body
type ErrorResponse struct {
	Success bool        `json:"success" example:"false"`
	Message string      `json:"message" example:"Please provide all required fields"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}
