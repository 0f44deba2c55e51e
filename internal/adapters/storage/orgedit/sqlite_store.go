package orgedit

import (
	"context"
	"database/sql"
	"log/slog"
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

const editColumns = `id, organization_id, organization_name, name, url, socials, picture,
		mission, purpose, benefit, appointment_procedures, uniqueness, meeting_schedule,
		meeting_days, keywords, tags, commitment_level, created_at`

// GetByID retrieves a pending edit by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Edit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+editColumns+` FROM organization_edits WHERE id = ?`, id)
	return scanEdit(row)
}

// GetByOrganization retrieves the pending edit for an organization, if any.
// At most one pending edit exists per organization; a new submission replaces
// the previous one.
// PRE: organizationID is non-empty
// POST: Returns the entity or sql.ErrNoRows when none is pending
func (s *SQLiteStore) GetByOrganization(ctx context.Context, organizationID string) (domain.Edit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+editColumns+` FROM organization_edits
		 WHERE organization_id = ? ORDER BY created_at DESC LIMIT 1`, organizationID)
	return scanEdit(row)
}

// List returns all pending edits, oldest first.
// PRE: none
// POST: Returns pending edits ordered by created_at ASC
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Edit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+editColumns+` FROM organization_edits ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edits []domain.Edit
	for rows.Next() {
		var e domain.Edit
		var sc scannedRow
		if err := rows.Scan(&e.ID, &e.OrganizationID, &e.OrganizationName,
			&sc.name, &sc.url, &sc.socials, &sc.picture, &sc.mission, &sc.purpose,
			&sc.benefit, &sc.appointmentProcedures, &sc.uniqueness, &sc.meetingSchedule,
			&sc.meetingDays, &sc.keywords, &sc.tags, &sc.commitmentLevel,
			&sc.createdAt); err != nil {
			return nil, err
		}
		applyScanned(&e, &sc)
		edits = append(edits, e)
	}
	return edits, rows.Err()
}

// Save inserts or updates a pending edit.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, e domain.Edit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO organization_edits (id, organization_id, organization_name, name, url,
		   socials, picture, mission, purpose, benefit, appointment_procedures, uniqueness,
		   meeting_schedule, meeting_days, keywords, tags, commitment_level, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   organization_id=excluded.organization_id, organization_name=excluded.organization_name,
		   name=excluded.name, url=excluded.url, socials=excluded.socials, picture=excluded.picture,
		   mission=excluded.mission, purpose=excluded.purpose, benefit=excluded.benefit,
		   appointment_procedures=excluded.appointment_procedures, uniqueness=excluded.uniqueness,
		   meeting_schedule=excluded.meeting_schedule, meeting_days=excluded.meeting_days,
		   keywords=excluded.keywords, tags=excluded.tags, commitment_level=excluded.commitment_level,
		   created_at=excluded.created_at`,
		e.ID, e.OrganizationID, e.OrganizationName,
		nullablePtr(e.Name), nullablePtr(e.URL), nullablePtr(e.Socials), nullablePtr(e.Picture),
		nullablePtr(e.Mission), nullablePtr(e.Purpose), nullablePtr(e.Benefit),
		nullablePtr(e.AppointmentProcedures), nullablePtr(e.Uniqueness),
		nullablePtr(e.MeetingSchedule), nullablePtr(e.MeetingDays),
		nullablePtr(e.Keywords), nullablePtr(e.Tags), nullablePtr(e.CommitmentLevel),
		e.CreatedAt.Format(timeLayout))
	return err
}

// Delete removes a pending edit by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM organization_edits WHERE id = ?`, id)
	return err
}

// scannedRow holds the raw scanned values from an edit row before conversion.
// A NULL column means the field is unchanged by this edit.
type scannedRow struct {
	name                  sql.NullString
	url                   sql.NullString
	socials               sql.NullString
	picture               sql.NullString
	mission               sql.NullString
	purpose               sql.NullString
	benefit               sql.NullString
	appointmentProcedures sql.NullString
	uniqueness            sql.NullString
	meetingSchedule       sql.NullString
	meetingDays           sql.NullString
	keywords              sql.NullString
	tags                  sql.NullString
	commitmentLevel       sql.NullString
	createdAt             string
}

// scanEdit scans a single row into an Edit.
func scanEdit(row *sql.Row) (domain.Edit, error) {
	var e domain.Edit
	var sc scannedRow

	err := row.Scan(&e.ID, &e.OrganizationID, &e.OrganizationName,
		&sc.name, &sc.url, &sc.socials, &sc.picture, &sc.mission, &sc.purpose,
		&sc.benefit, &sc.appointmentProcedures, &sc.uniqueness, &sc.meetingSchedule,
		&sc.meetingDays, &sc.keywords, &sc.tags, &sc.commitmentLevel,
		&sc.createdAt)
	if err != nil {
		return domain.Edit{}, err
	}

	applyScanned(&e, &sc)
	return e, nil
}

// applyScanned converts raw scanned values into the Edit domain fields.
func applyScanned(e *domain.Edit, sc *scannedRow) {
	e.Name = ptrFromNull(sc.name)
	e.URL = ptrFromNull(sc.url)
	e.Socials = ptrFromNull(sc.socials)
	e.Picture = ptrFromNull(sc.picture)
	e.Mission = ptrFromNull(sc.mission)
	e.Purpose = ptrFromNull(sc.purpose)
	e.Benefit = ptrFromNull(sc.benefit)
	e.AppointmentProcedures = ptrFromNull(sc.appointmentProcedures)
	e.Uniqueness = ptrFromNull(sc.uniqueness)
	e.MeetingSchedule = ptrFromNull(sc.meetingSchedule)
	e.MeetingDays = ptrFromNull(sc.meetingDays)
	e.Keywords = ptrFromNull(sc.keywords)
	e.Tags = ptrFromNull(sc.tags)
	e.CommitmentLevel = ptrFromNull(sc.commitmentLevel)
	e.CreatedAt = parseTime(sc.createdAt, e.ID)
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, editID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("orgedit: failed to parse time", "field", "created_at", "edit_id", editID, "raw", raw, "error", err)
	}
	return t
}

// ptrFromNull converts a nullable column into an optional field value.
// An empty string is a real proposed value, distinct from NULL.
func ptrFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// nullablePtr converts an optional field value into a bindable argument.
func nullablePtr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
