package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"clubdesk/internal/adapters/email"
	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/adapters/http/perf"
	accountStore "clubdesk/internal/adapters/storage/account"
	announcementStore "clubdesk/internal/adapters/storage/announcement"
	meetingStore "clubdesk/internal/adapters/storage/meeting"
	organizationStore "clubdesk/internal/adapters/storage/organization"
	orgeditStore "clubdesk/internal/adapters/storage/orgedit"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore      accountStore.Store
	OrganizationStore organizationStore.Store
	EditStore         orgeditStore.Store
	MeetingStore      meetingStore.Store
	AnnouncementStore announcementStore.Store
}

// loadCSRFKey reads the CSRF secret from CLUBDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CLUBDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CLUBDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CLUBDESK_ENV") == "production" {
		log.Fatal("CLUBDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CLUBDESK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global per-session view registry (set by NewMux)
var viewReg *viewRegistry

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from string) {
	emailSender = sender
	emailFromAddress = from
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	viewReg = newViewRegistry()
	middleware.SecureCookies = os.Getenv("CLUBDESK_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
