package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MaxEmailLength bounds the email field.
const MaxEmailLength = 254

// Role constants
const (
	RoleAdmin   = "admin"   // platform administrator: reviews edits, posts announcements
	RoleOfficer = "officer" // club officer: submits organization edits
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleOfficer}

// Domain errors
var (
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrInvalidRole      = errors.New("role must be one of: admin, officer")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrOfficerNeedsOrg  = errors.New("officer accounts must belong to an organization")
)

// Account holds a login identity for the admin surface. Officer accounts
// carry the organization they act for; admin accounts do not.
type Account struct {
	ID             string
	Email          string
	PasswordHash   string
	Role           string
	OrganizationID string // set for officers, empty for admins
	CreatedAt      time.Time
	FailedLogins   int
	LockedUntil    time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	if a.Role == RoleOfficer && a.OrganizationID == "" {
		return ErrOfficerNeedsOrg
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 12 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 12 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true while the account is locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	return !a.LockedUntil.IsZero() && time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failure counter and locks the account for
// 15 minutes after 5 consecutive failures.
// POST: FailedLogins incremented; LockedUntil set on the 5th failure
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= 5 {
		a.LockedUntil = time.Now().Add(15 * time.Minute)
	}
}

// ResetFailedLogins clears the failure counter and any lockout.
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

// IsAdmin returns true for platform administrators.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func isValidRole(r string) bool {
	for _, v := range ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}
