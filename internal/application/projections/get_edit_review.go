package projections

import (
	"context"

	"clubdesk/internal/domain/organization"
)

// MissingValue is shown for a changed field whose current live value is empty
// or could not be resolved.
const MissingValue = "NONE"

// EditReviewEditStore defines the edit store interface needed by this projection.
type EditReviewEditStore interface {
	GetByID(ctx context.Context, id string) (organization.Edit, error)
}

// EditReviewOrganizationStore defines the organization store interface needed
// by this projection.
type EditReviewOrganizationStore interface {
	GetFields(ctx context.Context, id string, fields []string) (map[string]string, error)
}

// GetEditReviewDeps holds dependencies for the projection.
type GetEditReviewDeps struct {
	EditStore         EditReviewEditStore
	OrganizationStore EditReviewOrganizationStore
}

// EditReviewResult pairs a pending edit's changed fields with the live values
// they would replace, for side-by-side review.
type EditReviewResult struct {
	Edit          organization.Edit
	ChangedFields []string          // allow-list order
	CurrentValues map[string]string // live values keyed by changed field
}

// ProposedValue returns the value the edit proposes for a changed field.
func (r *EditReviewResult) ProposedValue(field string) string {
	if v := r.Edit.FieldValue(field); v != nil {
		return *v
	}
	return MissingValue
}

// CurrentValue returns the live value a changed field would replace, or
// MissingValue when the organization has none.
func (r *EditReviewResult) CurrentValue(field string) string {
	if v, ok := r.CurrentValues[field]; ok && v != "" {
		return v
	}
	return MissingValue
}

// QueryGetEditReview resolves a pending edit into a reviewable diff.
// The organization is queried for exactly the changed fields; an edit that
// changes nothing skips the organization fetch entirely.
// PRE: editID is non-empty
// POST: result covers every changed field of the edit
func QueryGetEditReview(ctx context.Context, editID string, deps GetEditReviewDeps) (EditReviewResult, error) {
	edit, err := deps.EditStore.GetByID(ctx, editID)
	if err != nil {
		return EditReviewResult{}, err
	}

	result := EditReviewResult{
		Edit:          edit,
		ChangedFields: edit.ChangedFields(),
		CurrentValues: map[string]string{},
	}
	if len(result.ChangedFields) == 0 {
		return result, nil
	}

	current, err := deps.OrganizationStore.GetFields(ctx, edit.OrganizationID, result.ChangedFields)
	if err != nil {
		return EditReviewResult{}, err
	}
	result.CurrentValues = current
	return result, nil
}
