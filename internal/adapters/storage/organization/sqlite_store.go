package organization

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/organization"
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

const organizationColumns = `id, name, url, socials, picture, mission, purpose, benefit,
		appointment_procedures, uniqueness, meeting_schedule, meeting_days, keywords, tags,
		commitment_level, contact_email, created_at`

// GetByID retrieves an organization by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Organization, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id)
	return scanOrganization(row)
}

// GetFields retrieves a subset of editable profile columns for an organization.
// Field names outside the editable set are rejected before any query runs.
// PRE: id is non-empty, fields is non-empty
// POST: Returns a value per requested field, or an error if the row is missing
func (s *SQLiteStore) GetFields(ctx context.Context, id string, fields []string) (map[string]string, error) {
	if len(fields) == 0 {
		return map[string]string{}, nil
	}
	for _, f := range fields {
		if !domain.IsEditableField(f) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownField, f)
		}
	}

	// Column names come from the allow-list, never caller input.
	query := `SELECT ` + strings.Join(fields, ", ") + ` FROM organizations WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	values := make([]string, len(fields))
	dest := make([]any, len(fields))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	result := make(map[string]string, len(fields))
	for i, f := range fields {
		result[f] = values[i]
	}
	return result, nil
}

// UpdateFields overwrites a subset of editable profile columns for an
// organization. Field names outside the editable set are rejected before any
// statement runs.
// PRE: id is non-empty, fields is non-empty
// POST: Exactly the given columns are updated, or an error with no change
func (s *SQLiteStore) UpdateFields(ctx context.Context, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for f := range fields {
		if !domain.IsEditableField(f) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownField, f)
		}
		names = append(names, f)
	}
	sort.Strings(names)

	assignments := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	for i, f := range names {
		assignments[i] = f + " = ?"
		args = append(args, fields[f])
	}
	args = append(args, id)

	query := `UPDATE organizations SET ` + strings.Join(assignments, ", ") + ` WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Save inserts or updates an organization.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, o domain.Organization) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, url, socials, picture, mission, purpose, benefit,
		   appointment_procedures, uniqueness, meeting_schedule, meeting_days, keywords, tags,
		   commitment_level, contact_email, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, url=excluded.url, socials=excluded.socials, picture=excluded.picture,
		   mission=excluded.mission, purpose=excluded.purpose, benefit=excluded.benefit,
		   appointment_procedures=excluded.appointment_procedures, uniqueness=excluded.uniqueness,
		   meeting_schedule=excluded.meeting_schedule, meeting_days=excluded.meeting_days,
		   keywords=excluded.keywords, tags=excluded.tags, commitment_level=excluded.commitment_level,
		   contact_email=excluded.contact_email, created_at=excluded.created_at`,
		o.ID, o.Name, o.URL, o.Socials, o.Picture, o.Mission, o.Purpose, o.Benefit,
		o.AppointmentProcedures, o.Uniqueness, o.MeetingSchedule, o.MeetingDays,
		o.Keywords, o.Tags, o.CommitmentLevel, o.ContactEmail,
		o.CreatedAt.Format(timeLayout))
	return err
}

// List returns all organizations ordered by name.
// PRE: none
// POST: Returns organizations ordered by name ASC
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Organization, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		var createdAt string
		if err := rows.Scan(&o.ID, &o.Name, &o.URL, &o.Socials, &o.Picture, &o.Mission,
			&o.Purpose, &o.Benefit, &o.AppointmentProcedures, &o.Uniqueness,
			&o.MeetingSchedule, &o.MeetingDays, &o.Keywords, &o.Tags,
			&o.CommitmentLevel, &o.ContactEmail, &createdAt); err != nil {
			return nil, err
		}
		o.CreatedAt = parseTime(createdAt, o.ID)
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

// scanOrganization scans a single row into an Organization.
func scanOrganization(row *sql.Row) (domain.Organization, error) {
	var o domain.Organization
	var createdAt string

	err := row.Scan(&o.ID, &o.Name, &o.URL, &o.Socials, &o.Picture, &o.Mission,
		&o.Purpose, &o.Benefit, &o.AppointmentProcedures, &o.Uniqueness,
		&o.MeetingSchedule, &o.MeetingDays, &o.Keywords, &o.Tags,
		&o.CommitmentLevel, &o.ContactEmail, &createdAt)
	if err != nil {
		return domain.Organization{}, err
	}

	o.CreatedAt = parseTime(createdAt, o.ID)
	return o, nil
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, orgID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("organization: failed to parse time", "field", "created_at", "organization_id", orgID, "raw", raw, "error", err)
	}
	return t
}
