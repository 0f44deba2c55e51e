package meeting

import (
	"context"
	"time"

	domain "clubdesk/internal/domain/meeting"
)

// Store persists Meeting state.
type Store interface {
	ListByStartRange(ctx context.Context, from, until time.Time) ([]domain.Meeting, error)
	Save(ctx context.Context, value domain.Meeting) error
	SaveRoom(ctx context.Context, room domain.RoomRef) error
	Delete(ctx context.Context, id string) error
}
