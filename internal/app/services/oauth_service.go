package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/logger"
)

// OAuthService implements Google and Apple sign-in. Both providers share
// the same account resolution: match by provider identity first, then
// detect email conflicts, and only then provision a new account.
type OAuthService struct {
	students StudentStore
	batches  BatchStore
	tokens   TokenIssuer
	google   GoogleTokenVerifier
	apple    AppleTokenVerifier
}

// NewOAuthService creates a new OAuth service
func NewOAuthService(students StudentStore, batches BatchStore, tokens TokenIssuer, google GoogleTokenVerifier, apple AppleTokenVerifier) *OAuthService {
	return &OAuthService{
		students: students,
		batches:  batches,
		tokens:   tokens,
		google:   google,
		apple:    apple,
	}
}

// oauthIdentity is the provider-independent result of token verification
type oauthIdentity struct {
	provider  models.AuthProvider
	sub       string
	email     string
	firstName string
	lastName  string
	image     *string
}

// GoogleLogin signs a student in with a Google ID token, provisioning an
// account on first sign-in.
func (s *OAuthService) GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.OAuthLoginResponse, error) {
	claims, err := s.google.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrTokenInvalid,
			Message: "Google token verification failed",
		}
	}

	if !claims.EmailVerified {
		return nil, apperrors.NewValidationError("Google account email is not verified")
	}

	firstName := claims.GivenName
	if firstName == "" {
		firstName = "User"
	}

	identity := &oauthIdentity{
		provider:  models.ProviderGoogle,
		sub:       claims.Sub,
		email:     normalizeEmail(claims.Email),
		firstName: firstName,
		lastName:  claims.FamilyName,
	}
	if claims.Picture != "" {
		picture := claims.Picture
		identity.image = &picture
	}

	return s.resolveAccount(ctx, identity, req.BatchID)
}

// AppleLogin signs a student in with an Apple identity token. The
// student's name only arrives in the request body on the very first
// consent, so it is captured then or defaulted.
func (s *OAuthService) AppleLogin(ctx context.Context, req *dto.AppleLoginRequest) (*dto.OAuthLoginResponse, error) {
	claims, err := s.apple.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrTokenInvalid,
			Message: "Apple token verification failed",
		}
	}

	firstName := "User"
	lastName := ""
	if req.User != nil && req.User.Name != nil {
		if req.User.Name.FirstName != "" {
			firstName = req.User.Name.FirstName
		}
		lastName = req.User.Name.LastName
	}

	identity := &oauthIdentity{
		provider:  models.ProviderApple,
		sub:       claims.Sub,
		email:     normalizeEmail(claims.Email),
		firstName: firstName,
		lastName:  lastName,
	}

	return s.resolveAccount(ctx, identity, req.BatchID)
}

// resolveAccount maps a verified provider identity onto a student
// account. Lookup order matters: the provider identity wins over the
// email so a returning student never trips the conflict check.
func (s *OAuthService) resolveAccount(ctx context.Context, identity *oauthIdentity, batchID *int64) (*dto.OAuthLoginResponse, error) {
	student, err := s.students.GetByProvider(ctx, identity.sub, identity.provider)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	if student != nil {
		token, err := s.tokens.GenerateToken(student.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		logger.Info().Int64("student_id", student.ID).Str("provider", string(identity.provider)).Msg("Returning OAuth student signed in")
		return &dto.OAuthLoginResponse{Token: token, IsNewUser: false, Student: student}, nil
	}

	// The provider identity is unknown, so this is a first-time sign-in
	// and an email is required to provision the account. Returning
	// students are matched above without one; Apple omits the email when
	// the user opted out of sharing it.
	if identity.email == "" {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"%s token does not include an email address; enable email sharing for this app and try again",
			identity.provider))
	}

	// The email may still belong to an account created through another
	// sign-in path.
	existing, err := s.students.GetByEmail(ctx, identity.email)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf(
			"An account with email %s already exists. Please use %s sign-in or contact support.",
			identity.email, existing.AuthProvider))
	}

	return s.provisionAccount(ctx, identity, batchID)
}

// provisionAccount creates a first-time OAuth student
func (s *OAuthService) provisionAccount(ctx context.Context, identity *oauthIdentity, batchID *int64) (*dto.OAuthLoginResponse, error) {
	if batchID == nil || *batchID <= 0 {
		return nil, apperrors.NewValidationError("batchId is required for first-time sign-in")
	}

	batchExists, err := s.batches.Exists(ctx, *batchID)
	if err != nil {
		return nil, err
	}
	if !batchExists {
		return nil, apperrors.NewValidationError(fmt.Sprintf("batch %d does not exist", *batchID))
	}

	providerID := identity.sub
	student := &models.Student{
		FirstName:    identity.firstName,
		LastName:     identity.lastName,
		Email:        identity.email,
		Image:        identity.image,
		AuthProvider: identity.provider,
		ProviderID:   &providerID,
		BatchID:      *batchID,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Int64("student_id", student.ID).Str("provider", string(identity.provider)).Msg("New OAuth student provisioned")

	return &dto.OAuthLoginResponse{Token: token, IsNewUser: true, Student: student}, nil
}
