package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/dberrors"
)

// studentColumns is the select list shared by every student query
const studentColumns = `
	s.id, s.first_name, s.last_name, s.email, s.phone, s.image, s.password,
	s.auth_provider, s.provider_id, s.batch_id, s.created_at, s.updated_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student together with its course enrollments.
// The email is lowercased on write so lookups stay case-insensitive.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO students (first_name, last_name, email, phone, image, password, auth_provider, provider_id, batch_id)
		VALUES ($1, $2, lower($3), $4, $5, $6, $7, $8, $9)
		RETURNING id, email, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone,
		student.Image, student.Password, student.AuthProvider, student.ProviderID,
		student.BatchID,
	).Scan(&student.ID, &student.Email, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	if err := insertCourseLinks(ctx, tx, student.ID, student.CourseIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a student by ID, including batch and course links
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		WHERE s.id = $1
	`

	student, err := r.scanOne(ctx, query, id)
	if err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByEmail retrieves a student by email, case-insensitively
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		WHERE s.email = lower($1)
	`

	return r.scanOne(ctx, query, email)
}

// GetByProvider retrieves a student by its OAuth identity
func (r *StudentRepository) GetByProvider(ctx context.Context, providerID string, provider models.AuthProvider) (*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		WHERE s.provider_id = $1 AND s.auth_provider = $2
	`

	return r.scanOne(ctx, query, providerID, provider)
}

// GetAll retrieves one page of students ordered by creation time
func (r *StudentRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $1 OFFSET $2
	`

	return r.scanMany(ctx, query, limit, offset)
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}

// GetByBatchID retrieves all students enrolled in a batch
func (r *StudentRepository) GetByBatchID(ctx context.Context, batchID int64) ([]*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		WHERE s.batch_id = $1
		ORDER BY s.last_name, s.first_name
	`

	return r.scanMany(ctx, query, batchID)
}

// GetByCourseID retrieves all students enrolled in a course
func (r *StudentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		JOIN student_courses sc ON sc.student_id = s.id
		WHERE sc.course_id = $1
		ORDER BY s.last_name, s.first_name
	`

	return r.scanMany(ctx, query, courseID)
}

// Update persists profile changes. When courseIDs is non-nil the
// enrollment links are replaced atomically with the profile update.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student, courseIDs *[]int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, phone = $3, image = $4, batch_id = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := tx.Exec(ctx, query,
		student.FirstName, student.LastName, student.Phone, student.Image,
		student.BatchID, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	if courseIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM student_courses WHERE student_id = $1`, student.ID); err != nil {
			return fmt.Errorf("error clearing course links: %w", err)
		}
		if err := insertCourseLinks(ctx, tx, student.ID, *courseIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateImage stores the path of a newly uploaded profile image
func (r *StudentRepository) UpdateImage(ctx context.Context, id int64, imagePath string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students SET image = $1, updated_at = NOW() WHERE id = $2`,
		imagePath, id)
	if err != nil {
		return fmt.Errorf("error updating student image: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student. Enrollment rows go with it via ON DELETE CASCADE.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// EmailExists checks whether an email is already registered, case-insensitively
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = lower($1))`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// scanOne runs a single-row student query
func (r *StudentRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.Image,
		&student.Password,
		&student.AuthProvider,
		&student.ProviderID,
		&student.BatchID,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// scanMany runs a multi-row student query
func (r *StudentRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&student.Phone,
			&student.Image,
			&student.Password,
			&student.AuthProvider,
			&student.ProviderID,
			&student.BatchID,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// loadRelations fills the student's batch and course IDs
func (r *StudentRepository) loadRelations(ctx context.Context, student *models.Student) error {
	var batch models.Batch
	err := r.db.QueryRow(ctx, `
		SELECT id, name, capacity, start_date, end_date, created_at, updated_at
		FROM batches WHERE id = $1`,
		student.BatchID).Scan(
		&batch.ID,
		&batch.Name,
		&batch.Capacity,
		&batch.StartDate,
		&batch.EndDate,
		&batch.CreatedAt,
		&batch.UpdatedAt,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error retrieving student batch: %w", err)
	}
	if err == nil {
		student.Batch = &batch
	}

	rows, err := r.db.Query(ctx, `
		SELECT course_id FROM student_courses WHERE student_id = $1 ORDER BY course_id`,
		student.ID)
	if err != nil {
		return fmt.Errorf("error retrieving student courses: %w", err)
	}
	defer rows.Close()

	courseIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		courseIDs = append(courseIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	student.CourseIDs = courseIDs

	return nil
}

// insertCourseLinks adds enrollment rows inside the given transaction
func insertCourseLinks(ctx context.Context, tx pgx.Tx, studentID int64, courseIDs []int64) error {
	for _, courseID := range courseIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO student_courses (student_id, course_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			studentID, courseID)
		if err != nil {
			return fmt.Errorf("error linking course %d: %w", courseID, err)
		}
	}
	return nil
}
