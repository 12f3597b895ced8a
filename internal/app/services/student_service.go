package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/logger"
)

// Pagination defaults for student listings
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// allowedImageExtensions are the accepted profile image types
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// StudentService implements student profile management
type StudentService struct {
	students StudentStore
	courses  CourseStore
	batches  BatchStore
	storage  ImageStorage
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, courses CourseStore, batches BatchStore, storage ImageStorage) *StudentService {
	return &StudentService{
		students: students,
		courses:  courses,
		batches:  batches,
		storage:  storage,
	}
}

// GetAllStudents returns one page of students with pagination metadata
func (s *StudentService) GetAllStudents(ctx context.Context, page, limit int) (*dto.StudentListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	total, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.students.GetAll(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []*models.Student{}
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.StudentListResult{
		Count:    len(students),
		Total:    total,
		Page:     page,
		Pages:    pages,
		Students: students,
	}, nil
}

// GetStudentByID returns a single student with batch and course links
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetStudentsByBatch returns all students in a batch
func (s *StudentService) GetStudentsByBatch(ctx context.Context, batchID int64) ([]*models.Student, error) {
	exists, err := s.batches.Exists(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrBatchNotFound
	}

	students, err := s.students.GetByBatchID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []*models.Student{}
	}

	return students, nil
}

// GetStudentsByCourse returns all students enrolled in a course
func (s *StudentService) GetStudentsByCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	students, err := s.students.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []*models.Student{}
	}

	return students, nil
}

// UpdateStudent applies a partial profile update. Nil request fields
// leave the stored values untouched.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		student.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Image != nil {
		student.Image = req.Image
	}
	if req.BatchID != nil {
		exists, err := s.batches.Exists(ctx, *req.BatchID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewValidationError(fmt.Sprintf("batch %d does not exist", *req.BatchID))
		}
		student.BatchID = *req.BatchID
	}

	if req.CourseIDs != nil && len(*req.CourseIDs) > 0 {
		missing, ok, err := s.courses.ExistAll(ctx, *req.CourseIDs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("course %d does not exist", missing))
		}
	}

	if err := validateStruct(student); err != nil {
		return nil, err
	}

	if err := s.students.Update(ctx, student, req.CourseIDs); err != nil {
		return nil, err
	}

	return s.students.GetByID(ctx, id)
}

// DeleteStudent removes a student account and, best effort, its stored
// profile image.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	if student.Image != nil && *student.Image != "" {
		if err := s.storage.DeleteFile(*student.Image); err != nil {
			logger.Warn().Err(err).Int64("student_id", id).Msg("Failed to remove profile image after delete")
		}
	}

	return nil
}

// UploadImage stores a new profile image and replaces the previous one
func (s *StudentService) UploadImage(ctx context.Context, id int64, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewValidationError("image file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", apperrors.NewValidationError(fmt.Sprintf("unsupported image type '%s'", ext))
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	path, err := s.storage.SaveFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	if err := s.students.UpdateImage(ctx, id, path); err != nil {
		// Roll the orphaned file back, best effort
		_ = s.storage.DeleteFile(path)
		return "", err
	}

	if student.Image != nil && *student.Image != "" {
		if err := s.storage.DeleteFile(*student.Image); err != nil {
			logger.Warn().Err(err).Int64("student_id", id).Msg("Failed to remove replaced profile image")
		}
	}

	return path, nil
}
