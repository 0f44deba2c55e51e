package orgedit

import (
	"context"

	domain "clubdesk/internal/domain/organization"
)

// Store persists pending organization edits.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Edit, error)
	GetByOrganization(ctx context.Context, organizationID string) (domain.Edit, error)
	List(ctx context.Context) ([]domain.Edit, error)
	Save(ctx context.Context, value domain.Edit) error
	Delete(ctx context.Context, id string) error
}
