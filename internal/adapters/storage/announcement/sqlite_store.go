package announcement

import (
	"context"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/announcement"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// List returns all announcements in insertion order.
// PRE: none
// POST: Returns announcements ordered by created_at ASC
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, created_at FROM announcements ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Content, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = parseTime(createdAt, a.ID)
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// Insert persists a new announcement.
// PRE: entity has been validated
// POST: Entity is persisted; duplicate ids are an error
func (s *SQLiteStore) Insert(ctx context.Context, a domain.Announcement) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO announcements (id, content, created_at) VALUES (?, ?, ?)`,
		a.ID, a.Content, a.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes an announcement by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	return err
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, announcementID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("announcement: failed to parse time", "field", "created_at", "announcement_id", announcementID, "raw", raw, "error", err)
	}
	return t
}
