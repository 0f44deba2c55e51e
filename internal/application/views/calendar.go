package views

import (
	"context"
	"log/slog"
	"time"

	"clubdesk/internal/application/notify"
	"clubdesk/internal/domain/meeting"
)

const msgFetchMeetingsFailed = "Error fetching meetings. Contact it@stuysu.org for support."

// maxCachedDays bounds the day cache; the oldest fetched day is evicted
// when a new day would exceed it. Two months of browsing fits comfortably.
const maxCachedDays = 62

// MeetingsFetcher loads the meetings of one calendar day.
type MeetingsFetcher interface {
	DayMeetings(ctx context.Context, day time.Time) ([]meeting.Meeting, error)
}

// CalendarView is a day-at-a-time meeting browser. Days are fetched once and
// cached for the life of the view; revisiting a day never refetches. On a
// failed fetch the previously displayed day stays visible.
type CalendarView struct {
	fetcher  MeetingsFetcher
	notifier notify.Notifier
	life     lifetime

	selected time.Time
	visible  []meeting.Meeting
	cache    map[string][]meeting.Meeting
	order    []string // cache keys in insertion order, for eviction
}

// NewCalendarView creates a view selecting the given day (usually today) and
// loading its meetings.
func NewCalendarView(ctx context.Context, fetcher MeetingsFetcher, notifier notify.Notifier, today time.Time) *CalendarView {
	v := &CalendarView{
		fetcher:  fetcher,
		notifier: notifier,
		life:     newLifetime(ctx),
		cache:    make(map[string][]meeting.Meeting),
	}
	v.SelectDay(ctx, today)
	return v
}

// Close ends the view. In-flight fetches are cancelled and any result that
// resolves afterwards is dropped.
func (v *CalendarView) Close() {
	v.life.close()
}

// SelectDay switches the view to a calendar day. A cached day is shown
// without a fetch; a miss fetches and caches. On fetch failure the selection
// and visible meetings are left unchanged and an error notification queued.
// POST: at most one fetch per distinct day over the view's lifetime
func (v *CalendarView) SelectDay(ctx context.Context, day time.Time) {
	if v.life.closed {
		return
	}
	key := meeting.DayKey(day)

	if cached, ok := v.cache[key]; ok {
		v.selected = day
		v.visible = cached
		return
	}

	callCtx, done := v.life.bound(ctx)
	meetings, err := v.fetcher.DayMeetings(callCtx, day)
	done()
	if v.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "calendar", "event", "fetch_failed", "day", key, "error", err)
		v.notifier.Error(msgFetchMeetingsFailed)
		return
	}

	v.cache[key] = meetings
	v.order = append(v.order, key)
	v.evict()

	v.selected = day
	v.visible = meetings
}

// evict drops the oldest cached days beyond the cap.
func (v *CalendarView) evict() {
	for len(v.order) > maxCachedDays {
		delete(v.cache, v.order[0])
		v.order = v.order[1:]
	}
}

// SelectedDay returns the currently selected day.
func (v *CalendarView) SelectedDay() time.Time {
	return v.selected
}

// Meetings returns the meetings of the selected day.
func (v *CalendarView) Meetings() []meeting.Meeting {
	return v.visible
}

// CachedDays returns how many days are currently cached.
func (v *CalendarView) CachedDays() int {
	return len(v.cache)
}
