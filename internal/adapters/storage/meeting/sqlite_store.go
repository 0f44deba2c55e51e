package meeting

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/meeting"
)

// Times are stored as RFC3339 strings and range-compared lexicographically,
// so every write and query bound is normalized to UTC first. A mix of zone
// offsets in the column would mis-order rows at day boundaries.
const timeLayout = "2006-01-02T15:04:05Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListByStartRange returns meetings whose start time falls within [from, until),
// with their room and organization joined on.
// PRE: from is before until
// POST: Returns matching meetings ordered by start_time ASC
func (s *SQLiteStore) ListByStartRange(ctx context.Context, from, until time.Time) ([]domain.Meeting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.id, m.title, m.description, m.is_public, m.start_time, m.end_time,
		        m.room_id, r.name, o.id, o.name
		 FROM meetings m
		 LEFT JOIN rooms r ON r.id = m.room_id
		 JOIN organizations o ON o.id = m.organization_id
		 WHERE m.start_time >= ? AND m.start_time < ?
		 ORDER BY m.start_time ASC`,
		formatTime(from), formatTime(until))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []domain.Meeting
	for rows.Next() {
		var m domain.Meeting
		var sc scannedRow
		err := rows.Scan(&m.ID, &m.Title, &m.Description, &sc.isPublic,
			&sc.startTime, &sc.endTime,
			&sc.roomID, &sc.roomName, &m.Organization.ID, &m.Organization.Name)
		if err != nil {
			return nil, err
		}
		applyScanned(&m, &sc)
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Save inserts or updates a meeting.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, m domain.Meeting) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meetings (id, organization_id, room_id, title, description, is_public,
		   start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   organization_id=excluded.organization_id, room_id=excluded.room_id,
		   title=excluded.title, description=excluded.description, is_public=excluded.is_public,
		   start_time=excluded.start_time, end_time=excluded.end_time`,
		m.ID, m.Organization.ID, nullableString(m.Room.ID), m.Title, m.Description,
		boolToInt(m.IsPublic), formatTime(m.StartTime), nullableTime(m.EndTime))
	return err
}

// SaveRoom inserts or updates a room.
// PRE: room has a non-empty ID and name
// POST: Room is persisted (insert or update)
func (s *SQLiteStore) SaveRoom(ctx context.Context, room domain.RoomRef) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rooms (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name`,
		room.ID, room.Name)
	return err
}

// Delete removes a meeting by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	return err
}

// scannedRow holds the raw scanned values from a meeting row before conversion.
type scannedRow struct {
	isPublic  int
	startTime string
	endTime   sql.NullString
	roomID    sql.NullString
	roomName  sql.NullString
}

// applyScanned converts raw scanned values into the Meeting domain fields.
func applyScanned(m *domain.Meeting, sc *scannedRow) {
	m.IsPublic = sc.isPublic != 0
	m.StartTime = parseTime(sc.startTime, "start_time", m.ID)
	if sc.endTime.Valid {
		m.EndTime = parseTime(sc.endTime.String, "end_time", m.ID)
	}
	if sc.roomID.Valid {
		m.Room.ID = sc.roomID.String
	}
	if sc.roomName.Valid {
		m.Room.Name = sc.roomName.String
	}
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, field, meetingID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("meeting: failed to parse time", "field", field, "meeting_id", meetingID, "raw", raw, "error", err)
	}
	return t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatTime(t)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
