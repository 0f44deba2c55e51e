package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubdesk/internal/domain/announcement"
)

// AnnouncementStoreForOrchestrator defines the store interface needed by
// announcement orchestrators.
type AnnouncementStoreForOrchestrator interface {
	Insert(ctx context.Context, a announcement.Announcement) error
	Delete(ctx context.Context, id string) error
}

// --- Create Announcement ---

// CreateAnnouncementInput carries input for the create announcement orchestrator.
type CreateAnnouncementInput struct {
	Content   string
	CreatedBy string // AccountID of posting admin
}

// CreateAnnouncementDeps holds dependencies for CreateAnnouncement.
type CreateAnnouncementDeps struct {
	AnnouncementStore AnnouncementStoreForOrchestrator
	GenerateID        func() string
	Now               func() time.Time
}

// ExecuteCreateAnnouncement posts a new announcement.
// PRE: Content is non-blank after trimming
// POST: Announcement persisted with generated ID
func ExecuteCreateAnnouncement(ctx context.Context, input CreateAnnouncementInput, deps CreateAnnouncementDeps) (announcement.Announcement, error) {
	a := announcement.Announcement{
		ID:        deps.GenerateID(),
		Content:   input.Content,
		CreatedAt: deps.Now(),
	}

	if err := a.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	if err := deps.AnnouncementStore.Insert(ctx, a); err != nil {
		return announcement.Announcement{}, err
	}

	slog.Info("announcement_event", "event", "announcement_created", "announcement_id", a.ID, "created_by", input.CreatedBy)
	return a, nil
}

// --- Delete Announcement ---

// DeleteAnnouncementInput carries input for the delete announcement orchestrator.
type DeleteAnnouncementInput struct {
	AnnouncementID string
	DeletedBy      string // AccountID of deleting admin
}

// DeleteAnnouncementDeps holds dependencies for DeleteAnnouncement.
type DeleteAnnouncementDeps struct {
	AnnouncementStore AnnouncementStoreForOrchestrator
}

// ExecuteDeleteAnnouncement removes an announcement.
// PRE: AnnouncementID is non-empty
// POST: Announcement with the given id is removed
func ExecuteDeleteAnnouncement(ctx context.Context, input DeleteAnnouncementInput, deps DeleteAnnouncementDeps) error {
	if input.AnnouncementID == "" {
		return errors.New("announcement ID is required")
	}

	if err := deps.AnnouncementStore.Delete(ctx, input.AnnouncementID); err != nil {
		return err
	}

	slog.Info("announcement_event", "event", "announcement_deleted", "announcement_id", input.AnnouncementID, "deleted_by", input.DeletedBy)
	return nil
}
