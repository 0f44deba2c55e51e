package projections

import (
	"context"
	"database/sql"
	"errors"

	"clubdesk/internal/domain/organization"
)

// PendingEditStore defines the store interface needed by this projection.
type PendingEditStore interface {
	GetByOrganization(ctx context.Context, organizationID string) (organization.Edit, error)
}

// GetPendingEditDeps holds dependencies for the projection.
type GetPendingEditDeps struct {
	EditStore PendingEditStore
}

// PendingEditResult carries an organization's pending edit, if one exists.
type PendingEditResult struct {
	Found bool
	Edit  organization.Edit
}

// QueryGetPendingEdit returns the organization's pending edit for seeding the
// submission form. No pending edit is a normal outcome, not an error.
// PRE: organizationID is non-empty
// POST: Found is false iff no edit row exists
func QueryGetPendingEdit(ctx context.Context, organizationID string, deps GetPendingEditDeps) (PendingEditResult, error) {
	edit, err := deps.EditStore.GetByOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PendingEditResult{}, nil
		}
		return PendingEditResult{}, err
	}
	return PendingEditResult{Found: true, Edit: edit}, nil
}
