package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/go-playground/validator/v10"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/oauth"
)

// StudentStore is the persistence surface the services need for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByProvider(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error)
	GetAll(ctx context.Context, offset, limit int) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
	GetByBatchID(ctx context.Context, batchID int64) ([]*models.Student, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student, courseIDs *[]int64) error
	UpdateImage(ctx context.Context, id int64, imagePath string) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// CourseStore is the persistence surface the services need for courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	ExistAll(ctx context.Context, ids []int64) (int64, bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// BatchStore is the persistence surface the services need for batches
type BatchStore interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetByID(ctx context.Context, id int64) (*models.Batch, error)
	GetAll(ctx context.Context) ([]*models.Batch, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, batch *models.Batch) error
	Delete(ctx context.Context, id int64) error
}

// TokenIssuer mints session tokens for authenticated students
type TokenIssuer interface {
	GenerateToken(studentID int64) (string, error)
}

// GoogleTokenVerifier validates Google ID tokens
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error)
}

// AppleTokenVerifier validates Apple identity tokens
type AppleTokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*oauth.AppleClaims, error)
}

// ImageStorage is the subset of file storage the student service uses
type ImageStorage interface {
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
	DeleteFile(filePath string) error
}

// Services holds all service instances
type Services struct {
	AuthService    *AuthService
	OAuthService   *OAuthService
	StudentService *StudentService
	CourseService  *CourseService
	BatchService   *BatchService
}

// NewServices wires the service layer together
func NewServices(
	students StudentStore,
	courses CourseStore,
	batches BatchStore,
	tokens TokenIssuer,
	google GoogleTokenVerifier,
	apple AppleTokenVerifier,
	storage ImageStorage,
) *Services {
	return &Services{
		AuthService:    NewAuthService(students, courses, batches, tokens),
		OAuthService:   NewOAuthService(students, batches, tokens, google, apple),
		StudentService: NewStudentService(students, courses, batches, storage),
		CourseService:  NewCourseService(courses),
		BatchService:   NewBatchService(batches),
	}
}

// validate is the shared struct validator for model-level rules
var validate = validator.New()

// validateStruct runs the struct validator and converts the first
// failure into an application validation error.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fmt.Sprintf("field '%s' failed validation on '%s'", fe.Field(), fe.Tag()))
	}

	return apperrors.ErrValidationFailed
}
