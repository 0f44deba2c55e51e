package storage

import (
	"database/sql"
	"fmt"
)

// schemaVersion is the version the schema below produces. Bump together with
// an entry in migrations when altering tables.
const schemaVersion = 1

// LatestSchemaVersion returns the schema version this build expects.
func LatestSchemaVersion() int {
	return schemaVersion
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		organization_id TEXT,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		socials TEXT NOT NULL DEFAULT '',
		picture TEXT NOT NULL DEFAULT '',
		mission TEXT NOT NULL DEFAULT '',
		purpose TEXT NOT NULL DEFAULT '',
		benefit TEXT NOT NULL DEFAULT '',
		appointment_procedures TEXT NOT NULL DEFAULT '',
		uniqueness TEXT NOT NULL DEFAULT '',
		meeting_schedule TEXT NOT NULL DEFAULT '',
		meeting_days TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		commitment_level TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS organization_edits (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL,
		organization_name TEXT NOT NULL,
		name TEXT,
		url TEXT,
		socials TEXT,
		picture TEXT,
		mission TEXT,
		purpose TEXT,
		benefit TEXT,
		appointment_procedures TEXT,
		uniqueness TEXT,
		meeting_schedule TEXT,
		meeting_days TEXT,
		keywords TEXT,
		tags TEXT,
		commitment_level TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (organization_id) REFERENCES organizations(id)
	);

	CREATE TABLE IF NOT EXISTS rooms (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meetings (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL,
		room_id TEXT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_public INTEGER NOT NULL DEFAULT 1,
		start_time TEXT NOT NULL,
		end_time TEXT,
		FOREIGN KEY (organization_id) REFERENCES organizations(id),
		FOREIGN KEY (room_id) REFERENCES rooms(id)
	);
	CREATE INDEX IF NOT EXISTS idx_meetings_start_time ON meetings(start_time);

	CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SchemaVersion reports the database's current schema version.
// PRE: db is a valid database connection
// POST: returns 0 for a never-migrated database
func SchemaVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// MigrateDB brings the database schema up to the latest version. The base
// schema is idempotent; later versions apply incremental statements keyed by
// PRAGMA user_version.
// PRE: db is a valid database connection
// POST: user_version equals LatestSchemaVersion()
func MigrateDB(db *sql.DB) error {
	if err := InitDB(db); err != nil {
		return err
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for v := current + 1; v <= schemaVersion; v++ {
		stmts, ok := migrations[v]
		if ok {
			for _, stmt := range stmts {
				if _, err := db.Exec(stmt); err != nil {
					return fmt.Errorf("migration %d failed: %w", v, err)
				}
			}
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v)); err != nil {
			return fmt.Errorf("failed to set schema version %d: %w", v, err)
		}
	}

	return nil
}

// migrations holds incremental schema changes beyond the base schema.
// Version 1 is the base schema itself.
var migrations = map[int][]string{}
