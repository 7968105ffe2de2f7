package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
)

const attendanceColumns = `id, batch, department, year, month, date, students_list, given_by, created_at, updated_at`

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var att models.Attendance
	err := row.Scan(
		&att.ID, &att.Batch, &att.Department, &att.Year, &att.Month, &att.Date,
		&att.StudentsList, &att.GivenBy, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// Create inserts a new attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, att *models.Attendance) error {
	query := `
		INSERT INTO attendances (batch, department, year, month, date, students_list, given_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		att.Batch, att.Department, att.Year, att.Month, att.Date, att.StudentsList, att.GivenBy,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating attendance: %w", err)
	}
	return nil
}

// GetByID retrieves an attendance record by id. A miss returns (nil, nil).
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`
	return scanAttendance(r.db.QueryRow(ctx, query, id))
}

// Search retrieves every attendance record matching an optional
// case-insensitive search over year, month and date, ordered by date. The
// group-by-period pipeline in the service buckets and paginates the result.
func (r *AttendanceRepository) Search(ctx context.Context, search string, sortAsc bool) ([]models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE CAST(year AS TEXT) ILIKE $1 OR month ILIKE $1 OR date ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY date %s, id %s`, sortDirection(sortAsc), sortDirection(sortAsc))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var att models.Attendance
		if err := rows.Scan(
			&att.ID, &att.Batch, &att.Department, &att.Year, &att.Month, &att.Date,
			&att.StudentsList, &att.GivenBy, &att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// Update replaces an attendance record's fields and returns the post-update
// record. The creation timestamp is preserved so the edit window stays
// anchored to the original creation.
func (r *AttendanceRepository) Update(ctx context.Context, id int64, att *models.Attendance) (*models.Attendance, error) {
	query := `
		UPDATE attendances
		SET batch = $1, department = $2, year = $3, month = $4, date = $5,
		    students_list = $6, given_by = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(r.db.QueryRow(ctx, query,
		att.Batch, att.Department, att.Year, att.Month, att.Date, att.StudentsList, att.GivenBy, id,
	))
	if err != nil {
		return nil, fmt.Errorf("error updating attendance: %w", err)
	}
	return updated, nil
}

// Delete removes an attendance record and returns the removed record.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `DELETE FROM attendances WHERE id = $1 RETURNING ` + attendanceColumns
	return scanAttendance(r.db.QueryRow(ctx, query, id))
}
