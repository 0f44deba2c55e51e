package meeting

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/storage"
	orgStorage "clubdesk/internal/adapters/storage/organization"
	meetingDomain "clubdesk/internal/domain/meeting"
	orgDomain "clubdesk/internal/domain/organization"
)

func openStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSQLiteStore(db), db
}

func seedOrg(t *testing.T, db *sql.DB) {
	t.Helper()
	orgs := orgStorage.NewSQLiteStore(db)
	err := orgs.Save(context.Background(), orgDomain.Organization{
		ID:        "org-1",
		Name:      "Chess Club",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("save organization: %v", err)
	}
}

// TestListByStartRange_NormalizesZones verifies a meeting written with a
// non-UTC offset is found by UTC range bounds covering the same instant.
// Stored times are compared lexicographically, so mixed offsets would
// mis-bucket rows at day boundaries.
func TestListByStartRange_NormalizesZones(t *testing.T) {
	store, db := openStore(t)
	seedOrg(t, db)

	est := time.FixedZone("EST", -5*60*60)
	// 2026-04-10 22:00 EST is 2026-04-11 03:00 UTC.
	start := time.Date(2026, 4, 10, 22, 0, 0, 0, est)
	err := store.Save(context.Background(), meetingDomain.Meeting{
		ID:           "m-1",
		Title:        "Late blitz",
		Organization: meetingDomain.OrganizationRef{ID: "org-1", Name: "Chess Club"},
		StartTime:    start,
	})
	if err != nil {
		t.Fatalf("save meeting: %v", err)
	}

	utcDay := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
	got, err := store.ListByStartRange(context.Background(), utcDay, utcDay.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m-1" {
		t.Fatalf("meetings = %+v, want m-1", got)
	}
	if !got[0].StartTime.Equal(start) {
		t.Errorf("start time = %v, want the same instant as %v", got[0].StartTime, start)
	}

	// The EST calendar day must NOT contain it under UTC bucketing.
	prevDay := utcDay.AddDate(0, 0, -1)
	got, err = store.ListByStartRange(context.Background(), prevDay, utcDay)
	if err != nil {
		t.Fatalf("list previous day: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("previous UTC day = %+v, want empty", got)
	}
}

// TestSaveAndList_RoundTrip verifies rooms and end times survive storage.
func TestSaveAndList_RoundTrip(t *testing.T) {
	store, db := openStore(t)
	seedOrg(t, db)

	if err := store.SaveRoom(context.Background(), meetingDomain.RoomRef{ID: "room-1", Name: "Lab 2"}); err != nil {
		t.Fatalf("save room: %v", err)
	}

	start := time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)
	err := store.Save(context.Background(), meetingDomain.Meeting{
		ID:           "m-2",
		Title:        "Open play",
		Organization: meetingDomain.OrganizationRef{ID: "org-1", Name: "Chess Club"},
		Room:         meetingDomain.RoomRef{ID: "room-1"},
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		IsPublic:     true,
	})
	if err != nil {
		t.Fatalf("save meeting: %v", err)
	}

	got, err := store.ListByStartRange(context.Background(), start.Add(-time.Hour), start.Add(time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("meetings = %d, want 1", len(got))
	}
	m := got[0]
	if m.Room.Name != "Lab 2" {
		t.Errorf("room name = %q, want Lab 2", m.Room.Name)
	}
	if !m.EndTime.Equal(start.Add(2 * time.Hour)) {
		t.Errorf("end time = %v, want %v", m.EndTime, start.Add(2*time.Hour))
	}
	if !m.IsPublic {
		t.Error("is_public not persisted")
	}
}
