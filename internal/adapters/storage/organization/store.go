package organization

import (
	"context"

	domain "clubdesk/internal/domain/organization"
)

// Store persists Organization state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Organization, error)
	GetFields(ctx context.Context, id string, fields []string) (map[string]string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]string) error
	Save(ctx context.Context, value domain.Organization) error
	List(ctx context.Context) ([]domain.Organization, error)
}
