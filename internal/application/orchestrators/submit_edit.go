package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubdesk/internal/domain/organization"
)

// EditStoreForSubmit defines the edit store interface needed by SubmitOrganizationEdit.
type EditStoreForSubmit interface {
	GetByOrganization(ctx context.Context, organizationID string) (organization.Edit, error)
	Save(ctx context.Context, e organization.Edit) error
}

// OrganizationStoreForSubmit defines the organization store interface needed
// by SubmitOrganizationEdit.
type OrganizationStoreForSubmit interface {
	GetByID(ctx context.Context, id string) (organization.Organization, error)
}

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNoProposedChanges    = errors.New("edit proposes no changes")
)

// FieldRuleError reports a proposed value that fails its field's rules.
type FieldRuleError struct {
	Field string
}

func (e *FieldRuleError) Error() string {
	return fmt.Sprintf("proposed value for %q does not meet field requirements", e.Field)
}

// SubmitEditInput carries input for the submit orchestrator. Fields maps
// allow-listed field names to proposed values; non-allow-listed keys are
// ignored.
type SubmitEditInput struct {
	OrganizationID string
	Fields         map[string]string
	SubmittedBy    string // AccountID of submitting officer
}

// SubmitEditDeps holds dependencies for SubmitOrganizationEdit.
type SubmitEditDeps struct {
	EditStore         EditStoreForSubmit
	OrganizationStore OrganizationStoreForSubmit
	GenerateID        func() string
	Now               func() time.Time
}

// ExecuteSubmitOrganizationEdit records a proposed profile change for review.
// An organization has at most one pending edit; submitting again replaces
// the previous proposal's fields while keeping its row id.
// PRE: OrganizationID names an existing organization; Fields has at least one
// allow-listed key whose value differs from the live profile
// POST: Pending edit upserted holding exactly the differing allow-listed values
func ExecuteSubmitOrganizationEdit(ctx context.Context, input SubmitEditInput, deps SubmitEditDeps) (organization.Edit, error) {
	if input.OrganizationID == "" {
		return organization.Edit{}, organization.ErrMissingOrganization
	}

	org, err := deps.OrganizationStore.GetByID(ctx, input.OrganizationID)
	if err != nil {
		return organization.Edit{}, fmt.Errorf("%w: %s", ErrOrganizationNotFound, input.OrganizationID)
	}

	edit := organization.Edit{
		ID:               deps.GenerateID(),
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		CreatedAt:        deps.Now(),
	}

	// Replace rather than stack: reuse the id of an existing pending edit so
	// the upsert overwrites it.
	if prev, err := deps.EditStore.GetByOrganization(ctx, org.ID); err == nil {
		edit.ID = prev.ID
	} else if !errors.Is(err, sql.ErrNoRows) {
		return organization.Edit{}, err
	}

	for _, field := range organization.EditableFields {
		proposed, ok := input.Fields[field]
		if !ok {
			continue
		}
		current, _ := org.FieldValue(field)
		if proposed == current {
			continue
		}
		if !organization.CheckFieldValue(field, proposed) {
			return organization.Edit{}, &FieldRuleError{Field: field}
		}
		v := proposed
		edit.SetField(field, &v)
	}

	if !edit.HasChanges() {
		return organization.Edit{}, ErrNoProposedChanges
	}

	if err := edit.Validate(); err != nil {
		return organization.Edit{}, err
	}

	if err := deps.EditStore.Save(ctx, edit); err != nil {
		return organization.Edit{}, err
	}

	slog.Info("edit_event", "event", "edit_submitted", "edit_id", edit.ID,
		"organization_id", org.ID, "fields", len(edit.ChangedFields()), "submitted_by", input.SubmittedBy)
	return edit, nil
}
