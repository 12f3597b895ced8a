package services

import (
	"context"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
)

// CourseService implements course catalog management
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// CreateCourse adds a course to the catalog
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
	}

	if err := validateStruct(course); err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAllCourses returns the full course catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []*models.Course{}
	}

	return courses, nil
}

// GetCourseByID returns a single course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// UpdateCourse applies a partial course update
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Duration != nil {
		course.Duration = req.Duration
	}

	if err := validateStruct(course); err != nil {
		return nil, err
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and its enrollments
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
