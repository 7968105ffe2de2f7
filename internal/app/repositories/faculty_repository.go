package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
)

const facultyColumns = `id, name, department, user_details, courses_taught, created_by, created_at, updated_at`

// FacultyRepository handles database operations for faculty
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(&f.ID, &f.Name, &f.Department, &f.UserDetails, &f.CoursesTaught, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// Create inserts a new faculty record.
func (r *FacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	query := `
		INSERT INTO faculty (name, department, user_details, courses_taught, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, f.Name, f.Department, f.UserDetails, f.CoursesTaught, f.CreatedBy).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating faculty: %w", err)
	}
	return nil
}

// GetByID retrieves a faculty record by id. A miss returns (nil, nil).
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty WHERE id = $1`
	return scanFaculty(r.db.QueryRow(ctx, query, id))
}

// SearchRoster produces the flattened roster rows for the faculty listing:
// each faculty joined with its user, department and each taught course, one
// row per (faculty, course) pair. A faculty with no courses still yields one
// row with a nil course; dangling references yield nil joined records. Rows
// come back ordered by department then faculty so the service can bucket
// them without re-sorting members.
func (r *FacultyRepository) SearchRoster(ctx context.Context, search string, sortAsc bool) ([]dto.FacultyRosterRow, error) {
	query := `
		SELECT f.id, f.name, f.department,
		       u.id, u.user_id, u.name, u.email, u.phone_no, u.dob, u.department, u.role, u.status,
		       d.id, d.dept_id, d.name, d.status,
		       c.id, c.course_id, c.name, c.details, c.credits, c.syllabus
		FROM faculty f
		LEFT JOIN users u ON u.id = f.user_details
		LEFT JOIN departments d ON d.id = f.department
		LEFT JOIN courses c ON c.id = ANY(f.courses_taught)
	`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE f.name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	dir := sortDirection(sortAsc)
	query += fmt.Sprintf(` ORDER BY f.department %s, f.id %s, c.id %s`, dir, dir, dir)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := []dto.FacultyRosterRow{}
	for rows.Next() {
		var (
			row dto.FacultyRosterRow

			uID                *int64
			uUserID, uName     *string
			uEmail, uPhone     *string
			uDOB               *string
			uDept, uRole       *int64
			uStatus            *string

			dID            *int64
			dDeptID, dName *string
			dStatus        *string

			cID                *int64
			cCourseID, cName   *string
			cDetails           *string
			cCredits           *int
			cSyllabus          *string
		)

		if err := rows.Scan(
			&row.ID, &row.Name, &row.Department,
			&uID, &uUserID, &uName, &uEmail, &uPhone, &uDOB, &uDept, &uRole, &uStatus,
			&dID, &dDeptID, &dName, &dStatus,
			&cID, &cCourseID, &cName, &cDetails, &cCredits, &cSyllabus,
		); err != nil {
			return nil, err
		}

		if uID != nil {
			row.UserDetails = &models.User{
				ID: *uID, UserID: *uUserID, Name: *uName, Email: *uEmail,
				PhoneNo: *uPhone, DOB: *uDOB, Department: *uDept, Role: *uRole, Status: *uStatus,
			}
		}
		if dID != nil {
			row.DepartmentDetails = &models.Department{
				ID: *dID, DeptID: *dDeptID, Name: *dName, Status: *dStatus,
			}
		}
		if cID != nil {
			row.CourseDetail = &models.Course{
				ID: *cID, CourseID: *cCourseID, Name: *cName,
				Details: *cDetails, Credits: *cCredits, Syllabus: *cSyllabus,
			}
		}

		roster = append(roster, row)
	}

	return roster, rows.Err()
}

// Update replaces a faculty record's fields and returns the post-update
// record.
func (r *FacultyRepository) Update(ctx context.Context, id int64, f *models.Faculty) (*models.Faculty, error) {
	query := `
		UPDATE faculty
		SET name = $1, department = $2, user_details = $3, courses_taught = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + facultyColumns

	updated, err := scanFaculty(r.db.QueryRow(ctx, query, f.Name, f.Department, f.UserDetails, f.CoursesTaught, id))
	if err != nil {
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return updated, nil
}

// Delete removes a faculty record and returns the removed record.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) (*models.Faculty, error) {
	query := `DELETE FROM faculty WHERE id = $1 RETURNING ` + facultyColumns
	return scanFaculty(r.db.QueryRow(ctx, query, id))
}
