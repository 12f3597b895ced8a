package dto

import "time"

// APIResponse is the uniform success envelope for API endpoints
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-01T12:01:05.123Z"`
}

// NewAPIResponse creates a standard success response
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewAPIResponseWithMessage creates a success response with a message
func NewAPIResponseWithMessage(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// ListResponse is the envelope for paginated collections
type ListResponse struct {
	Success   bool        `json:"success" example:"true"`
	Count     int         `json:"count" example:"25"`
	Total     int64       `json:"total" example:"120"`
	Page      int         `json:"page,omitempty" example:"1"`
	Pages     int         `json:"pages,omitempty" example:"5"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewListResponse creates a collection response without pagination metadata
func NewListResponse(count int, data interface{}) ListResponse {
	return ListResponse{
		Success:   true,
		Count:     count,
		Total:     int64(count),
		Data:      data,
		Timestamp: time.Now(),
	}
}
