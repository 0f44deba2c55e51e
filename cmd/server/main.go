package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	emailPkg "clubdesk/internal/adapters/email"
	web "clubdesk/internal/adapters/http"
	"clubdesk/internal/adapters/http/perf"
	"clubdesk/internal/adapters/storage"
	accountStore "clubdesk/internal/adapters/storage/account"
	announcementStore "clubdesk/internal/adapters/storage/announcement"
	meetingStore "clubdesk/internal/adapters/storage/meeting"
	organizationStore "clubdesk/internal/adapters/storage/organization"
	orgeditStore "clubdesk/internal/adapters/storage/orgedit"
	"clubdesk/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("CLUBDESK_DB", "clubdesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Run database migrations
	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	acctStore := accountStore.NewSQLiteStore(timedDB)
	orgStore := organizationStore.NewSQLiteStore(timedDB)
	meetStore := meetingStore.NewSQLiteStore(timedDB)
	annStore := announcementStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:      acctStore,
		OrganizationStore: orgStore,
		EditStore:         orgeditStore.NewSQLiteStore(timedDB),
		MeetingStore:      meetStore,
		AnnouncementStore: annStore,
	}

	// Seed bootstrap admin account
	adminEmail := envOrDefault("CLUBDESK_ADMIN_EMAIL", "it@stuysu.org")
	adminPassword := envOrDefault("CLUBDESK_ADMIN_PASSWORD", "change-me-before-launch")
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore, Now: time.Now}
	seedInput := orchestrators.SeedAdminInput{Email: adminEmail, Password: adminPassword}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedInput, seedDeps); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed demo data for development only
	if os.Getenv("CLUBDESK_ENV") != "production" {
		demoDeps := orchestrators.DemoSeedDeps{
			AccountStore:      acctStore,
			OrganizationStore: orgStore,
			MeetingStore:      meetStore,
			AnnouncementStore: annStore,
			Now:               time.Now,
		}
		if err := orchestrators.ExecuteSeedDemoData(context.Background(), demoDeps); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo seed data loaded (dev mode)")
	}

	// Configure email sender
	resendKey := os.Getenv("CLUBDESK_RESEND_KEY")
	emailFrom := envOrDefault("CLUBDESK_RESEND_FROM", "ClubDesk <noreply@stuysu.org>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if os.Getenv("CLUBDESK_ENV") == "production" {
			log.Println("WARNING: CLUBDESK_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CLUBDESK_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + dashboard)
	mux := web.NewMux("static", stores, collector)

	// Start server
	addr := envOrDefault("CLUBDESK_ADDR", ":8080")
	log.Printf("ClubDesk %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("CLUBDESK_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
