package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/oauth"
)

func googleClaims() *oauth.GoogleClaims {
	return &oauth.GoogleClaims{
		Sub:           "google-sub-123",
		Email:         "jane@example.com",
		EmailVerified: true,
		GivenName:     "Jane",
		FamilyName:    "Doe",
		Picture:       "https://lh3.googleusercontent.com/photo.jpg",
	}
}

func newOAuthService(students *mockStudentStore, batches *mockBatchStore, google *mockGoogleVerifier, apple *mockAppleVerifier) *OAuthService {
	if students == nil {
		students = &mockStudentStore{}
	}
	if batches == nil {
		batches = &mockBatchStore{}
	}
	return NewOAuthService(students, batches, &mockTokenIssuer{}, google, apple)
}

func TestGoogleLogin_VerificationFailure(t *testing.T) {
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return nil, oauth.ErrTokenVerification
		},
	}
	svc := newOAuthService(nil, nil, google, nil)

	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "bad"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestGoogleLogin_UnverifiedEmailRejected(t *testing.T) {
	claims := googleClaims()
	claims.EmailVerified = false
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return claims, nil
		},
	}
	svc := newOAuthService(nil, nil, google, nil)

	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGoogleLogin_ReturningStudent(t *testing.T) {
	existing := &models.Student{
		ID:           7,
		Email:        "jane@example.com",
		AuthProvider: models.ProviderGoogle,
	}
	students := &mockStudentStore{
		GetByProviderFunc: func(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error) {
			assert.Equal(t, "google-sub-123", providerID)
			assert.Equal(t, models.ProviderGoogle, provider)
			return existing, nil
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Student, error) {
			t.Fatal("email lookup must not run for a returning student")
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, student *models.Student) error {
			t.Fatal("no account should be created for a returning student")
			return nil
		},
	}
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return googleClaims(), nil
		},
	}
	svc := newOAuthService(students, nil, google, nil)

	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok"})

	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, int64(7), resp.Student.ID)
}

func TestGoogleLogin_EmailConflictNamesExistingProvider(t *testing.T) {
	students := &mockStudentStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Student, error) {
			return &models.Student{ID: 3, Email: email, AuthProvider: models.ProviderLocal}, nil
		},
	}
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return googleClaims(), nil
		},
	}
	svc := newOAuthService(students, nil, google, nil)

	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "local")
	assert.Contains(t, err.Error(), "jane@example.com")
}

func TestGoogleLogin_FirstSignInRequiresBatch(t *testing.T) {
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return googleClaims(), nil
		},
	}
	svc := newOAuthService(nil, nil, google, nil)

	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGoogleLogin_FirstSignInUnknownBatch(t *testing.T) {
	batches := &mockBatchStore{
		ExistsFunc: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return googleClaims(), nil
		},
	}
	svc := newOAuthService(nil, batches, google, nil)

	batchID := int64(42)
	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok", BatchID: &batchID})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGoogleLogin_ProvisionsNewStudent(t *testing.T) {
	var created *models.Student
	students := &mockStudentStore{
		CreateFunc: func(ctx context.Context, student *models.Student) error {
			student.ID = 11
			created = student
			return nil
		},
	}
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return googleClaims(), nil
		},
	}
	svc := newOAuthService(students, nil, google, nil)

	batchID := int64(5)
	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok", BatchID: &batchID})

	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.Equal(t, int64(11), resp.Student.ID)

	require.NotNil(t, created)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, models.ProviderGoogle, created.AuthProvider)
	require.NotNil(t, created.ProviderID)
	assert.Equal(t, "google-sub-123", *created.ProviderID)
	assert.Equal(t, int64(5), created.BatchID)
	require.NotNil(t, created.Image)
	assert.Equal(t, "https://lh3.googleusercontent.com/photo.jpg", *created.Image)
	assert.Empty(t, created.Password)
}

func TestGoogleLogin_DefaultsMissingNames(t *testing.T) {
	claims := googleClaims()
	claims.GivenName = ""
	claims.FamilyName = ""

	var created *models.Student
	students := &mockStudentStore{
		CreateFunc: func(ctx context.Context, student *models.Student) error {
			student.ID = 12
			created = student
			return nil
		},
	}
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return claims, nil
		},
	}
	svc := newOAuthService(students, nil, google, nil)

	batchID := int64(5)
	_, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok", BatchID: &batchID})

	require.NoError(t, err)
	assert.Equal(t, "User", created.FirstName)
	assert.Equal(t, "", created.LastName)
}

func TestAppleLogin_VerificationFailure(t *testing.T) {
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return nil, oauth.ErrTokenVerification
		},
	}
	svc := newOAuthService(nil, nil, nil, apple)

	resp, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{IDToken: "bad"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAppleLogin_ReturningStudentIgnoresUserData(t *testing.T) {
	existing := &models.Student{ID: 9, AuthProvider: models.ProviderApple}
	students := &mockStudentStore{
		GetByProviderFunc: func(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error) {
			assert.Equal(t, models.ProviderApple, provider)
			return existing, nil
		},
	}
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return &oauth.AppleClaims{Sub: "apple-sub-9", Email: "sam@example.com"}, nil
		},
	}
	svc := newOAuthService(students, nil, nil, apple)

	resp, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{
		IDToken: "tok",
		User:    &dto.AppleUserData{Name: &dto.AppleUserName{FirstName: "Ignored", LastName: "Name"}},
	})

	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)
	assert.Equal(t, int64(9), resp.Student.ID)
}

func TestAppleLogin_ReturningStudentWithoutEmail(t *testing.T) {
	// Apple omits the email on subsequent tokens when the user opted out
	// of sharing it; a returning student must still get a session.
	existing := &models.Student{ID: 9, Email: "sam@example.com", AuthProvider: models.ProviderApple}
	students := &mockStudentStore{
		GetByProviderFunc: func(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error) {
			assert.Equal(t, "apple-sub-9", providerID)
			return existing, nil
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Student, error) {
			t.Fatal("email lookup must not run for a returning student")
			return nil, nil
		},
	}
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return &oauth.AppleClaims{Sub: "apple-sub-9", Email: ""}, nil
		},
	}
	svc := newOAuthService(students, nil, nil, apple)

	resp, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{IDToken: "tok"})

	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, int64(9), resp.Student.ID)
}

func TestAppleLogin_FirstSignInWithoutEmail(t *testing.T) {
	students := &mockStudentStore{
		CreateFunc: func(ctx context.Context, student *models.Student) error {
			t.Fatal("no account may be provisioned without an email")
			return nil
		},
	}
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return &oauth.AppleClaims{Sub: "apple-sub-new", Email: ""}, nil
		},
	}
	svc := newOAuthService(students, nil, nil, apple)

	batchID := int64(2)
	resp, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{IDToken: "tok", BatchID: &batchID})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email")
}

func TestGoogleLogin_FirstSignInWithoutEmail(t *testing.T) {
	claims := googleClaims()
	claims.Email = ""
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return claims, nil
		},
	}
	svc := newOAuthService(nil, nil, google, nil)

	batchID := int64(5)
	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok", BatchID: &batchID})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAppleLogin_ProvisionsWithOneTimeName(t *testing.T) {
	var created *models.Student
	students := &mockStudentStore{
		CreateFunc: func(ctx context.Context, student *models.Student) error {
			student.ID = 20
			created = student
			return nil
		},
	}
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return &oauth.AppleClaims{Sub: "apple-sub-20", Email: "Sam@Example.com"}, nil
		},
	}
	svc := newOAuthService(students, nil, nil, apple)

	batchID := int64(2)
	resp, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{
		IDToken: "tok",
		User:    &dto.AppleUserData{Name: &dto.AppleUserName{FirstName: "Sam", LastName: "Taylor"}},
		BatchID: &batchID,
	})

	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.Equal(t, "Sam", created.FirstName)
	assert.Equal(t, "Taylor", created.LastName)
	// Email is stored lowercased
	assert.Equal(t, "sam@example.com", created.Email)
	assert.Equal(t, models.ProviderApple, created.AuthProvider)
}

func TestAppleLogin_ProvisionsWithoutUserData(t *testing.T) {
	var created *models.Student
	students := &mockStudentStore{
		CreateFunc: func(ctx context.Context, student *models.Student) error {
			student.ID = 21
			created = student
			return nil
		},
	}
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return &oauth.AppleClaims{Sub: "apple-sub-21", Email: "kim@example.com"}, nil
		},
	}
	svc := newOAuthService(students, nil, nil, apple)

	batchID := int64(2)
	_, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{IDToken: "tok", BatchID: &batchID})

	require.NoError(t, err)
	assert.Equal(t, "User", created.FirstName)
	assert.Equal(t, "", created.LastName)
}

func TestAppleLogin_EmailConflict(t *testing.T) {
	students := &mockStudentStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.Student, error) {
			return &models.Student{ID: 3, Email: email, AuthProvider: models.ProviderGoogle}, nil
		},
	}
	apple := &mockAppleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
			return &oauth.AppleClaims{Sub: "apple-sub-3", Email: "jane@example.com"}, nil
		},
	}
	svc := newOAuthService(students, nil, nil, apple)

	resp, err := svc.AppleLogin(context.Background(), &dto.AppleLoginRequest{IDToken: "tok"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "google")
}

func TestGoogleLogin_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	students := &mockStudentStore{
		GetByProviderFunc: func(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error) {
			return nil, storeErr
		},
	}
	google := &mockGoogleVerifier{
		VerifyFunc: func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
			return googleClaims(), nil
		},
	}
	svc := newOAuthService(students, nil, google, nil)

	resp, err := svc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{IDToken: "tok"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, storeErr)
}
