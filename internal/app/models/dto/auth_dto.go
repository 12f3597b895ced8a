package dto

import "github.com/edubase/studenthub/internal/app/models"

// RegisterRequest represents a local student registration request
type RegisterRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required"`
	Phone     *string `json:"phone,omitempty"`
	BatchID   int64   `json:"batchId" binding:"required,min=1"`
	CourseIDs []int64 `json:"courseIds,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest represents a Google Sign-In request.
// BatchID is only consulted when the token belongs to a first-time user.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	BatchID *int64 `json:"batchId,omitempty"`
}

// AppleUserName carries the one-time name payload Apple sends on first consent
type AppleUserName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AppleUserData is the optional profile object from the Apple sign-in response
type AppleUserData struct {
	Name *AppleUserName `json:"name,omitempty"`
}

// AppleLoginRequest represents an Apple Sign-In request
type AppleLoginRequest struct {
	IDToken string         `json:"idToken" binding:"required"`
	User    *AppleUserData `json:"user,omitempty"`
	BatchID *int64         `json:"batchId,omitempty"`
}

// AuthResponse represents a successful authentication result
type AuthResponse struct {
	Token   string          `json:"token"`
	Student *models.Student `json:"data,omitempty"`
}

// OAuthLoginResponse represents a successful OAuth sign-in result
type OAuthLoginResponse struct {
	Token     string          `json:"token"`
	IsNewUser bool            `json:"isNewUser"`
	Student   *models.Student `json:"data"`
}
