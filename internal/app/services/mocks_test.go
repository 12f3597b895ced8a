package services

import (
	"context"
	"mime/multipart"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/oauth"
)

// mockStudentStore implements StudentStore with overridable functions
type mockStudentStore struct {
	CreateFunc        func(ctx context.Context, student *models.Student) error
	GetByIDFunc       func(ctx context.Context, id int64) (*models.Student, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.Student, error)
	GetByProviderFunc func(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error)
	GetAllFunc        func(ctx context.Context, offset, limit int) ([]*models.Student, error)
	CountFunc         func(ctx context.Context) (int64, error)
	GetByBatchIDFunc  func(ctx context.Context, batchID int64) ([]*models.Student, error)
	GetByCourseIDFunc func(ctx context.Context, courseID int64) ([]*models.Student, error)
	UpdateFunc        func(ctx context.Context, student *models.Student, courseIDs *[]int64) error
	UpdateImageFunc   func(ctx context.Context, id int64, imagePath string) error
	DeleteFunc        func(ctx context.Context, id int64) error
	EmailExistsFunc   func(ctx context.Context, email string) (bool, error)
}

func (m *mockStudentStore) Create(ctx context.Context, student *models.Student) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, student)
	}
	student.ID = 1
	return nil
}

func (m *mockStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentStore) GetByProvider(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error) {
	if m.GetByProviderFunc != nil {
		return m.GetByProviderFunc(ctx, providerID, provider)
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentStore) GetAll(ctx context.Context, offset, limit int) ([]*models.Student, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockStudentStore) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockStudentStore) GetByBatchID(ctx context.Context, batchID int64) ([]*models.Student, error) {
	if m.GetByBatchIDFunc != nil {
		return m.GetByBatchIDFunc(ctx, batchID)
	}
	return nil, nil
}

func (m *mockStudentStore) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	if m.GetByCourseIDFunc != nil {
		return m.GetByCourseIDFunc(ctx, courseID)
	}
	return nil, nil
}

func (m *mockStudentStore) Update(ctx context.Context, student *models.Student, courseIDs *[]int64) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, student, courseIDs)
	}
	return nil
}

func (m *mockStudentStore) UpdateImage(ctx context.Context, id int64, imagePath string) error {
	if m.UpdateImageFunc != nil {
		return m.UpdateImageFunc(ctx, id, imagePath)
	}
	return nil
}

func (m *mockStudentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStudentStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

// mockCourseStore implements CourseStore with overridable functions
type mockCourseStore struct {
	CreateFunc   func(ctx context.Context, course *models.Course) error
	GetByIDFunc  func(ctx context.Context, id int64) (*models.Course, error)
	GetAllFunc   func(ctx context.Context) ([]*models.Course, error)
	ExistAllFunc func(ctx context.Context, ids []int64) (int64, bool, error)
	UpdateFunc   func(ctx context.Context, course *models.Course) error
	DeleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockCourseStore) Create(ctx context.Context, course *models.Course) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, course)
	}
	course.ID = 1
	return nil
}

func (m *mockCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *mockCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCourseStore) ExistAll(ctx context.Context, ids []int64) (int64, bool, error) {
	if m.ExistAllFunc != nil {
		return m.ExistAllFunc(ctx, ids)
	}
	return 0, true, nil
}

func (m *mockCourseStore) Update(ctx context.Context, course *models.Course) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, course)
	}
	return nil
}

func (m *mockCourseStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockBatchStore implements BatchStore with overridable functions
type mockBatchStore struct {
	CreateFunc  func(ctx context.Context, batch *models.Batch) error
	GetByIDFunc func(ctx context.Context, id int64) (*models.Batch, error)
	GetAllFunc  func(ctx context.Context) ([]*models.Batch, error)
	ExistsFunc  func(ctx context.Context, id int64) (bool, error)
	UpdateFunc  func(ctx context.Context, batch *models.Batch) error
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockBatchStore) Create(ctx context.Context, batch *models.Batch) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, batch)
	}
	batch.ID = 1
	return nil
}

func (m *mockBatchStore) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperrors.ErrBatchNotFound
}

func (m *mockBatchStore) GetAll(ctx context.Context) ([]*models.Batch, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockBatchStore) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockBatchStore) Update(ctx context.Context, batch *models.Batch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, batch)
	}
	return nil
}

func (m *mockBatchStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTokenIssuer returns a fixed token unless overridden
type mockTokenIssuer struct {
	GenerateTokenFunc func(studentID int64) (string, error)
}

func (m *mockTokenIssuer) GenerateToken(studentID int64) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(studentID)
	}
	return "test-token", nil
}

// mockGoogleVerifier implements GoogleTokenVerifier
type mockGoogleVerifier struct {
	VerifyFunc func(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error)
}

func (m *mockGoogleVerifier) Verify(ctx context.Context, rawToken string) (*oauth.GoogleClaims, error) {
	return m.VerifyFunc(ctx, rawToken)
}

// mockAppleVerifier implements AppleTokenVerifier
type mockAppleVerifier struct {
	VerifyFunc func(ctx context.Context, rawToken string) (*oauth.AppleClaims, error)
}

func (m *mockAppleVerifier) Verify(ctx context.Context, rawToken string) (*oauth.AppleClaims, error) {
	return m.VerifyFunc(ctx, rawToken)
}

// mockImageStorage implements ImageStorage
type mockImageStorage struct {
	SaveFileFunc   func(fileHeader *multipart.FileHeader) (string, error)
	DeleteFileFunc func(filePath string) error
	deleted        []string
}

func (m *mockImageStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if m.SaveFileFunc != nil {
		return m.SaveFileFunc(fileHeader)
	}
	return "uploads/test-image.png", nil
}

func (m *mockImageStorage) DeleteFile(filePath string) error {
	m.deleted = append(m.deleted, filePath)
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(filePath)
	}
	return nil
}
