package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// The password column holds the bcrypt hash and is only populated for
// local accounts; it is never serialized.
type Student struct {
	ID           int64        `json:"id" db:"id" example:"1"`
	FirstName    string       `json:"firstName" db:"first_name" validate:"required,max=50" example:"John"`
	LastName     string       `json:"lastName" db:"last_name" validate:"max=50" example:"Doe"`
	Email        string       `json:"email" db:"email" validate:"required,email" example:"john@example.com"`
	Phone        *string      `json:"phone,omitempty" db:"phone" validate:"omitempty,len=10,numeric" example:"5551234567"`
	Image        *string      `json:"image,omitempty" db:"image"`
	Password     string       `json:"-" db:"password"`
	AuthProvider AuthProvider `json:"authProvider" db:"auth_provider" example:"local"`
	ProviderID   *string      `json:"providerId,omitempty" db:"provider_id"`
	BatchID      int64        `json:"batchId" db:"batch_id" validate:"required,min=1"`
	CourseIDs    []int64      `json:"courseIds" db:"-"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`

	Batch *Batch `json:"batch,omitempty"` // Relation, no db tag
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsOAuthAccount reports whether the account authenticates through an
// external provider rather than a stored password.
func (s *Student) IsOAuthAccount() bool {
	return s.AuthProvider == ProviderGoogle || s.AuthProvider == ProviderApple
}
