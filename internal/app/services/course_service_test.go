package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
)

func TestCreateCourse_Success(t *testing.T) {
	svc := NewCourseService(&mockCourseStore{})

	duration := 12
	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:     "Go Fundamentals",
		Duration: &duration,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)
	assert.Equal(t, "Go Fundamentals", course.Name)
}

func TestCreateCourse_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateCourseRequest
	}{
		{
			name: "empty name",
			req:  dto.CreateCourseRequest{Name: ""},
		},
		{
			name: "name too long",
			req:  dto.CreateCourseRequest{Name: strings.Repeat("x", 51)},
		},
		{
			name: "zero duration",
			req: dto.CreateCourseRequest{
				Name:     "Go Fundamentals",
				Duration: intPtr(0),
			},
		},
		{
			name: "description too long",
			req: dto.CreateCourseRequest{
				Name:        "Go Fundamentals",
				Description: strPtr(strings.Repeat("x", 501)),
			},
		},
	}

	svc := NewCourseService(&mockCourseStore{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := svc.CreateCourse(context.Background(), &tt.req)
			assert.Nil(t, course)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateCourse_DuplicateName(t *testing.T) {
	courses := &mockCourseStore{
		CreateFunc: func(ctx context.Context, course *models.Course) error {
			return apperrors.ErrCourseAlreadyExists
		},
	}
	svc := NewCourseService(courses)

	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{Name: "Go Fundamentals"})

	assert.Nil(t, course)
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
}

func TestGetAllCourses_EmptyCatalogIsNotNil(t *testing.T) {
	svc := NewCourseService(&mockCourseStore{})

	courses, err := svc.GetAllCourses(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestUpdateCourse_PartialUpdate(t *testing.T) {
	desc := "Original description"
	var updated *models.Course
	courses := &mockCourseStore{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Course, error) {
			return &models.Course{ID: id, Name: "Go Fundamentals", Description: &desc}, nil
		},
		UpdateFunc: func(ctx context.Context, course *models.Course) error {
			updated = course
			return nil
		},
	}
	svc := NewCourseService(courses)

	newName := "Advanced Go"
	course, err := svc.UpdateCourse(context.Background(), 1, &dto.UpdateCourseRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", course.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Original description", *updated.Description)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	svc := NewCourseService(&mockCourseStore{})

	name := "Advanced Go"
	course, err := svc.UpdateCourse(context.Background(), 42, &dto.UpdateCourseRequest{Name: &name})

	assert.Nil(t, course)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestDeleteCourse_NotFound(t *testing.T) {
	courses := &mockCourseStore{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return apperrors.ErrCourseNotFound
		},
	}
	svc := NewCourseService(courses)

	err := svc.DeleteCourse(context.Background(), 42)

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
