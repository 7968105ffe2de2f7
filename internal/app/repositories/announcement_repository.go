package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
)

const announcementColumns = `id, title, content, created_by, created_at, updated_at`

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var ann models.Announcement
	err := row.Scan(&ann.ID, &ann.Title, &ann.Content, &ann.CreatedBy, &ann.CreatedAt, &ann.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ann, nil
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, ann *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, ann.Title, ann.Content, ann.CreatedBy).
		Scan(&ann.ID, &ann.CreatedAt, &ann.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetByID retrieves an announcement by id. A miss returns (nil, nil).
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`
	return scanAnnouncement(r.db.QueryRow(ctx, query, id))
}

// List retrieves announcements matching an optional case-insensitive title
// search.
func (r *AnnouncementRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE title ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s OFFSET %d LIMIT %d`, sortDirection(sortAsc), offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var ann models.Announcement
		if err := rows.Scan(&ann.ID, &ann.Title, &ann.Content, &ann.CreatedBy, &ann.CreatedAt, &ann.UpdatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, ann)
	}

	return announcements, rows.Err()
}

// Update replaces an announcement's fields and returns the post-update record.
func (r *AnnouncementRepository) Update(ctx context.Context, id int64, ann *models.Announcement) (*models.Announcement, error) {
	query := `
		UPDATE announcements
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + announcementColumns

	updated, err := scanAnnouncement(r.db.QueryRow(ctx, query, ann.Title, ann.Content, id))
	if err != nil {
		return nil, fmt.Errorf("error updating announcement: %w", err)
	}
	return updated, nil
}

// Delete removes an announcement and returns the removed record.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) (*models.Announcement, error) {
	query := `DELETE FROM announcements WHERE id = $1 RETURNING ` + announcementColumns
	return scanAnnouncement(r.db.QueryRow(ctx, query, id))
}
