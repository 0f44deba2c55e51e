package account

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/account"
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

const accountColumns = `id, email, password_hash, role, organization_id, created_at,
		failed_logins, locked_until`

// GetByID retrieves an account by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM account WHERE id = ?`, id)
	return scanAccount(row)
}

// GetByEmail retrieves an account by email, case-insensitively.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM account WHERE email = ? COLLATE NOCASE`,
		strings.TrimSpace(email))
	return scanAccount(row)
}

// Save inserts or updates an account.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO account (id, email, password_hash, role, organization_id, created_at,
		   failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email=excluded.email, password_hash=excluded.password_hash, role=excluded.role,
		   organization_id=excluded.organization_id, created_at=excluded.created_at,
		   failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		a.ID, a.Email, a.PasswordHash, a.Role, nullableString(a.OrganizationID),
		a.CreatedAt.Format(timeLayout), a.FailedLogins, nullableTime(a.LockedUntil))
	return err
}

// Count returns the number of accounts.
// PRE: none
// POST: Returns the total account count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM account`).Scan(&n)
	return n, err
}

// scanAccount scans a single row into an Account.
func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var orgID sql.NullString
	var createdAt string
	var lockedUntil sql.NullString

	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &orgID, &createdAt,
		&a.FailedLogins, &lockedUntil)
	if err != nil {
		return domain.Account{}, err
	}

	if orgID.Valid {
		a.OrganizationID = orgID.String
	}
	a.CreatedAt = parseTime(createdAt, "created_at", a.ID)
	if lockedUntil.Valid {
		a.LockedUntil = parseTime(lockedUntil.String, "locked_until", a.ID)
	}
	return a, nil
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, field, accountID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("account: failed to parse time", "field", field, "account_id", accountID, "raw", raw, "error", err)
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
	return t.Format(timeLayout)
}
