package meeting

import (
	"errors"
	"fmt"
	"time"
)

// Max length constants.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyTitle          = errors.New("meeting title cannot be empty")
	ErrMissingStart        = errors.New("meeting start time is required")
	ErrEndBeforeStart      = errors.New("meeting end time cannot be before start time")
	ErrMissingOrganization = errors.New("meeting must belong to an organization")
)

// RoomRef is the room summary joined onto a meeting.
type RoomRef struct {
	ID   string
	Name string
}

// OrganizationRef is the organization summary joined onto a meeting.
type OrganizationRef struct {
	ID   string
	Name string
}

// Meeting is a single meeting occurrence. Immutable once fetched.
type Meeting struct {
	ID           string
	Title        string
	Description  string
	IsPublic     bool
	StartTime    time.Time
	EndTime      time.Time
	Room         RoomRef
	Organization OrganizationRef
}

// Validate checks the meeting's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (m *Meeting) Validate() error {
	if m.Title == "" {
		return ErrEmptyTitle
	}
	if len(m.Title) > MaxTitleLength {
		return errors.New("meeting title cannot exceed 200 characters")
	}
	if len(m.Description) > MaxDescriptionLength {
		return errors.New("meeting description cannot exceed 2000 characters")
	}
	if m.StartTime.IsZero() {
		return ErrMissingStart
	}
	if !m.EndTime.IsZero() && m.EndTime.Before(m.StartTime) {
		return ErrEndBeforeStart
	}
	if m.Organization.ID == "" {
		return ErrMissingOrganization
	}
	return nil
}

// DayKey builds the "year/month/day" cache key for a calendar day.
// INVARIANT: two times on the same calendar day in the same location map to
// the same key
func DayKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// DayBounds returns the half-open interval [dayStart, nextDayStart) covering
// the calendar day of t in the given location.
// PRE: loc is non-nil
// POST: start is midnight of t's day, next is midnight of the following day
func DayBounds(t time.Time, loc *time.Location) (start, next time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	next = start.AddDate(0, 0, 1)
	return start, next
}
