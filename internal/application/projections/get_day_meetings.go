package projections

import (
	"context"
	"time"

	"clubdesk/internal/domain/meeting"
)

// DayMeetingsStore defines the store interface needed by this projection.
type DayMeetingsStore interface {
	ListByStartRange(ctx context.Context, from, until time.Time) ([]meeting.Meeting, error)
}

// GetDayMeetingsDeps holds dependencies for the projection.
type GetDayMeetingsDeps struct {
	MeetingStore DayMeetingsStore
}

// QueryGetDayMeetings returns every meeting starting on the calendar day of t,
// in t's location, ordered by start time.
// PRE: t carries the intended location
// POST: all returned meetings start within [midnight, next midnight)
func QueryGetDayMeetings(ctx context.Context, t time.Time, deps GetDayMeetingsDeps) ([]meeting.Meeting, error) {
	start, next := meeting.DayBounds(t, t.Location())
	return deps.MeetingStore.ListByStartRange(ctx, start, next)
}
