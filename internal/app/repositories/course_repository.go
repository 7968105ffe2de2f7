package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
)

const courseColumns = `id, course_id, name, details, credits, syllabus, created_by, created_at, updated_at`

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID, &course.CourseID, &course.Name, &course.Details, &course.Credits,
		&course.Syllabus, &course.CreatedBy, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course. CourseID must already be generated.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, name, details, credits, syllabus, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseID, course.Name, course.Details, course.Credits, course.Syllabus, course.CreatedBy,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by id. A miss returns (nil, nil).
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return scanCourse(r.db.QueryRow(ctx, query, id))
}

// List retrieves courses matching an optional case-insensitive search over
// course_id, name and details.
func (r *CourseRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE course_id ILIKE $1 OR name ILIKE $1 OR details ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s OFFSET %d LIMIT %d`, sortDirection(sortAsc), offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID, &course.CourseID, &course.Name, &course.Details, &course.Credits,
			&course.Syllabus, &course.CreatedBy, &course.CreatedAt, &course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// Update replaces a course's mutable fields and returns the post-update
// record. course_id stays server-assigned.
func (r *CourseRepository) Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error) {
	query := `
		UPDATE courses
		SET name = $1, details = $2, credits = $3, syllabus = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + courseColumns

	updated, err := scanCourse(r.db.QueryRow(ctx, query, course.Name, course.Details, course.Credits, course.Syllabus, id))
	if err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return updated, nil
}

// Delete removes a course and returns the removed record.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (*models.Course, error) {
	query := `DELETE FROM courses WHERE id = $1 RETURNING ` + courseColumns
	return scanCourse(r.db.QueryRow(ctx, query, id))
}
