package announcement

import (
	"errors"
	"strings"
	"time"
)

// MaxContentLength bounds announcement content.
const MaxContentLength = 5000

// Domain errors
var (
	ErrEmptyContent   = errors.New("announcement content cannot be empty")
	ErrContentTooLong = errors.New("announcement content cannot exceed 5000 characters")
)

// Announcement is a short free-text message posted by an administrator.
// Content supports Markdown formatting.
type Announcement struct {
	ID        string
	Content   string
	CreatedAt time.Time
}

// Validate checks if the Announcement has valid data.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Content) == "" {
		return ErrEmptyContent
	}
	if len(a.Content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
