package models

import "time"

// Batch defines a student cohort based on the 'batches' table
type Batch struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	Name      string     `json:"name" db:"name" validate:"required,max=50" example:"2026 Spring"`
	Capacity  *int       `json:"capacity,omitempty" db:"capacity" validate:"omitempty,min=1" example:"30"`
	StartDate *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"end_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
