package views

import (
	"context"
	"log/slog"
	"strings"

	"clubdesk/internal/application/notify"
	"clubdesk/internal/domain/announcement"
)

// User-facing notification texts for the announcement board.
const (
	msgLoadAnnouncementsFailed  = "Failed to load announcements. Contact it@stuysu.org for support."
	msgAnnouncementEmpty        = "Announcement cannot be empty."
	msgCreateAnnouncementFailed = "Failed to create announcement. Contact it@stuysu.org for support."
	msgAnnouncementDeleted      = "Announcement deleted."
	msgDeleteAnnouncementFailed = "Failed to delete announcement. Contact it@stuysu.org for support."
)

// BoardProcedures is the backend surface of the announcement board.
type BoardProcedures interface {
	List(ctx context.Context) ([]announcement.Announcement, error)
	Create(ctx context.Context, content string) (announcement.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// AnnouncementBoard keeps the board's local copy of the announcement list.
// After the initial load the list is maintained by mutation — created rows
// are prepended, deleted rows removed — and never re-fetched.
type AnnouncementBoard struct {
	procedures BoardProcedures
	notifier   notify.Notifier
	life       lifetime

	items []announcement.Announcement
}

// NewAnnouncementBoard creates a board and loads the announcement list.
func NewAnnouncementBoard(ctx context.Context, procedures BoardProcedures, notifier notify.Notifier) *AnnouncementBoard {
	b := &AnnouncementBoard{
		procedures: procedures,
		notifier:   notifier,
		life:       newLifetime(ctx),
	}
	b.load(ctx)
	return b
}

// Close ends the board. Results of in-flight backend calls are dropped.
func (b *AnnouncementBoard) Close() {
	b.life.close()
}

// load fetches the full list. On failure the board stays empty with an error
// notification queued.
func (b *AnnouncementBoard) load(ctx context.Context) {
	callCtx, done := b.life.bound(ctx)
	items, err := b.procedures.List(callCtx)
	done()
	if b.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "announcement_board", "event", "load_failed", "error", err)
		b.notifier.Error(msgLoadAnnouncementsFailed)
		return
	}
	b.items = items
}

// Announcements returns the board's current list.
func (b *AnnouncementBoard) Announcements() []announcement.Announcement {
	return b.items
}

// Create posts a new announcement and prepends the authoritative stored row.
// Blank content is rejected locally without touching the backend.
// POST: on success the new row is first in the list
func (b *AnnouncementBoard) Create(ctx context.Context, content string) {
	if b.life.closed {
		return
	}
	if strings.TrimSpace(content) == "" {
		b.notifier.Error(msgAnnouncementEmpty)
		return
	}

	callCtx, done := b.life.bound(ctx)
	created, err := b.procedures.Create(callCtx, content)
	done()
	if b.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "announcement_board", "event", "create_failed", "error", err)
		b.notifier.Error(msgCreateAnnouncementFailed)
		return
	}

	b.items = append([]announcement.Announcement{created}, b.items...)
}

// Delete removes an announcement. The local list only changes after the
// backend confirms; there is no optimistic removal.
// POST: on failure the list is untouched
func (b *AnnouncementBoard) Delete(ctx context.Context, id string) {
	if b.life.closed {
		return
	}
	callCtx, done := b.life.bound(ctx)
	err := b.procedures.Delete(callCtx, id)
	done()
	if b.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "announcement_board", "event", "delete_failed", "announcement_id", id, "error", err)
		b.notifier.Error(msgDeleteAnnouncementFailed)
		return
	}

	kept := b.items[:0:0]
	for _, a := range b.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	b.items = kept
	b.notifier.Success(msgAnnouncementDeleted)
}
