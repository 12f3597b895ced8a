package dto

import "time"

// CreateBatchRequest represents batch creation data
type CreateBatchRequest struct {
	Name      string     `json:"name" binding:"required"`
	Capacity  *int       `json:"capacity,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// UpdateBatchRequest represents batch update data
type UpdateBatchRequest struct {
	Name      *string    `json:"name,omitempty"`
	Capacity  *int       `json:"capacity,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}
