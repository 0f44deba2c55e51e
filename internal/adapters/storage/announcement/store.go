package announcement

import (
	"context"

	domain "clubdesk/internal/domain/announcement"
)

// Store persists Announcement state.
type Store interface {
	List(ctx context.Context) ([]domain.Announcement, error)
	Insert(ctx context.Context, value domain.Announcement) error
	Delete(ctx context.Context, id string) error
}
