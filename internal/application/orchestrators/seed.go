package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clubdesk/internal/domain/account"
	"clubdesk/internal/domain/announcement"
	"clubdesk/internal/domain/meeting"
	"clubdesk/internal/domain/organization"
)

// AccountStoreForSeed defines the account store interface needed by seeding.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	Count(ctx context.Context) (int, error)
}

// --- Seed Admin ---

// SeedAdminInput carries the bootstrap admin credentials.
type SeedAdminInput struct {
	Email    string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
	Now          func() time.Time
}

// ExecuteSeedAdmin creates the bootstrap admin account if it doesn't exist.
// Idempotent — an existing account with the same email is left untouched.
// PRE: Database is migrated
// POST: An admin account with the given email exists
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) error {
	if input.Email == "" || input.Password == "" {
		return fmt.Errorf("admin email and password are required for seeding")
	}

	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		slog.Info("seed_event", "event", "admin_exists", "email", input.Email)
		return nil
	}

	acct := account.Account{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Role:      account.RoleAdmin,
		CreatedAt: deps.Now(),
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return fmt.Errorf("failed to save admin account: %w", err)
	}

	slog.Info("seed_event", "event", "admin_created", "email", input.Email)
	return nil
}

// --- Seed Demo Data ---

// DemoSeedDeps holds stores needed for demo data seeding.
type DemoSeedDeps struct {
	AccountStore      AccountStoreForSeed
	OrganizationStore demoOrganizationStore
	MeetingStore      demoMeetingStore
	AnnouncementStore AnnouncementStoreForOrchestrator
	Now               func() time.Time
}

type demoOrganizationStore interface {
	Save(ctx context.Context, o organization.Organization) error
	List(ctx context.Context) ([]organization.Organization, error)
}

type demoMeetingStore interface {
	Save(ctx context.Context, m meeting.Meeting) error
	SaveRoom(ctx context.Context, room meeting.RoomRef) error
}

// ExecuteSeedDemoData populates a development database with a few
// organizations, meetings and announcements. Skips entirely when any
// organization already exists.
// PRE: Database is migrated
// POST: Demo rows exist, or the database already had data and is untouched
func ExecuteSeedDemoData(ctx context.Context, deps DemoSeedDeps) error {
	existing, err := deps.OrganizationStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := deps.Now()

	orgs := []organization.Organization{
		{
			ID:           uuid.NewString(),
			Name:         "Chess Club",
			URL:          "chess-club",
			Mission:      "Teach every student to love the game of chess.",
			MeetingDays:  "Tuesday Thursday",
			ContactEmail: "chess@example.edu",
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Robotics Team",
			URL:          "robotics-team",
			Mission:      "Build competition robots and learn engineering together.",
			MeetingDays:  "Friday",
			ContactEmail: "robotics@example.edu",
			CreatedAt:    now,
		},
	}
	for _, o := range orgs {
		if err := deps.OrganizationStore.Save(ctx, o); err != nil {
			return fmt.Errorf("failed to seed organization %s: %w", o.Name, err)
		}
	}

	room := meeting.RoomRef{ID: uuid.NewString(), Name: "Room 339"}
	if err := deps.MeetingStore.SaveRoom(ctx, room); err != nil {
		return fmt.Errorf("failed to seed room: %w", err)
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 15, 30, 0, 0, now.Location())
	meetings := []meeting.Meeting{
		{
			ID:           uuid.NewString(),
			Title:        "Weekly blitz tournament",
			Description:  "Five-minute games, all levels welcome.",
			IsPublic:     true,
			StartTime:    start,
			EndTime:      start.Add(90 * time.Minute),
			Room:         room,
			Organization: meeting.OrganizationRef{ID: orgs[0].ID, Name: orgs[0].Name},
		},
		{
			ID:           uuid.NewString(),
			Title:        "Drive-train workshop",
			IsPublic:     true,
			StartTime:    start.AddDate(0, 0, 1),
			Organization: meeting.OrganizationRef{ID: orgs[1].ID, Name: orgs[1].Name},
		},
	}
	for _, m := range meetings {
		if err := deps.MeetingStore.Save(ctx, m); err != nil {
			return fmt.Errorf("failed to seed meeting %s: %w", m.Title, err)
		}
	}

	welcome := announcement.Announcement{
		ID:        uuid.NewString(),
		Content:   "Welcome to the new semester! Club charters are due **Friday**.",
		CreatedAt: now,
	}
	if err := deps.AnnouncementStore.Insert(ctx, welcome); err != nil {
		return fmt.Errorf("failed to seed announcement: %w", err)
	}

	officer := account.Account{
		ID:             uuid.NewString(),
		Email:          "officer@example.edu",
		Role:           account.RoleOfficer,
		OrganizationID: orgs[0].ID,
		CreatedAt:      now,
	}
	if err := officer.SetPassword("officer-demo-pass"); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, officer); err != nil {
		return fmt.Errorf("failed to seed officer account: %w", err)
	}

	slog.Info("seed_event", "event", "demo_data_created", "organizations", len(orgs), "meetings", len(meetings))
	return nil
}
