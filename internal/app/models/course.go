package models

import "time"

// Course defines the course catalog entry based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" validate:"required,max=50" example:"Go Fundamentals"`
	Description *string   `json:"description,omitempty" db:"description" validate:"omitempty,max=500"`
	Duration    *int      `json:"duration,omitempty" db:"duration" validate:"omitempty,min=1" example:"12"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
