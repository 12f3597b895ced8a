package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/auth"
	"github.com/edubase/studenthub/internal/pkg/logger"
)

// MinPasswordLength is the minimum accepted password length for local accounts
const MinPasswordLength = 6

// AuthService implements local registration and login
type AuthService struct {
	students StudentStore
	courses  CourseStore
	batches  BatchStore
	tokens   TokenIssuer
}

// NewAuthService creates a new authentication service
func NewAuthService(students StudentStore, courses CourseStore, batches BatchStore, tokens TokenIssuer) *AuthService {
	return &AuthService{
		students: students,
		courses:  courses,
		batches:  batches,
		tokens:   tokens,
	}
}

// Register creates a local student account and returns a session token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	if len(req.Password) < MinPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	student := &models.Student{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Phone:        req.Phone,
		AuthProvider: models.ProviderLocal,
		BatchID:      req.BatchID,
		CourseIDs:    req.CourseIDs,
	}

	if err := validateStruct(student); err != nil {
		return nil, err
	}

	exists, err := s.students.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if err := s.checkEnrollmentTargets(ctx, req.BatchID, req.CourseIDs); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	student.Password = hash

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Int64("student_id", student.ID).Str("email", student.Email).Msg("Student registered")

	return &dto.AuthResponse{Token: token, Student: student}, nil
}

// Login verifies local credentials and returns a session token.
// Unknown emails, wrong passwords and OAuth-backed accounts (which carry
// no password) all fail with the same generic error so an unauthenticated
// caller learns nothing about the account.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	student, err := s.students.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if student.IsOAuthAccount() || !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Int64("student_id", student.ID).Msg("Student logged in")

	return &dto.AuthResponse{Token: token, Student: student}, nil
}

// GetCurrentStudent returns the profile behind a session token's subject
func (s *AuthService) GetCurrentStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.students.GetByID(ctx, studentID)
}

// checkEnrollmentTargets verifies the referenced batch and courses exist
func (s *AuthService) checkEnrollmentTargets(ctx context.Context, batchID int64, courseIDs []int64) error {
	batchExists, err := s.batches.Exists(ctx, batchID)
	if err != nil {
		return err
	}
	if !batchExists {
		return apperrors.NewValidationError(fmt.Sprintf("batch %d does not exist", batchID))
	}

	if len(courseIDs) > 0 {
		missing, ok, err := s.courses.ExistAll(ctx, courseIDs)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("course %d does not exist", missing))
		}
	}

	return nil
}

// normalizeEmail lowercases and trims an email so comparisons are
// case-insensitive everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
