package dto

// APIResponse is the generic success envelope returned by all endpoints
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Operation completed"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success response with an optional payload
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// PaginationInfo carries page metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	Total       int64 `json:"total" example:"42"`
}
