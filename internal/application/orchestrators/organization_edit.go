package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clubdesk/internal/adapters/email"
	"clubdesk/internal/domain/organization"
)

// EditStoreForOrchestrator defines the edit store interface needed by review orchestrators.
type EditStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (organization.Edit, error)
	Delete(ctx context.Context, id string) error
}

// OrganizationStoreForOrchestrator defines the organization store interface
// needed by review orchestrators.
type OrganizationStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (organization.Organization, error)
	UpdateFields(ctx context.Context, id string, fields map[string]string) error
}

var (
	ErrEditNotFound = errors.New("organization edit not found")
)

// --- Approve Organization Edit ---

// ApproveEditInput carries input for the approve orchestrator.
type ApproveEditInput struct {
	EditID     string
	ReviewerID string // AccountID of reviewing admin
}

// ApproveEditDeps holds dependencies for ApproveOrganizationEdit.
type ApproveEditDeps struct {
	EditStore         EditStoreForOrchestrator
	OrganizationStore OrganizationStoreForOrchestrator
	EmailSender       email.Sender // optional; nil disables outcome emails
	EmailFrom         string
}

// ExecuteApproveOrganizationEdit applies a pending edit to its organization
// and removes the edit. Only allow-listed fields that the edit actually
// changes are written; the organization update runs before the edit is
// deleted, so a failed update leaves the edit pending for retry.
// PRE: EditID is non-empty; the edit exists
// POST: Changed fields are applied to the organization, edit row removed
func ExecuteApproveOrganizationEdit(ctx context.Context, input ApproveEditInput, deps ApproveEditDeps) error {
	if input.EditID == "" {
		return errors.New("edit ID is required")
	}

	edit, err := deps.EditStore.GetByID(ctx, input.EditID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEditNotFound, input.EditID)
	}

	updated := edit.UpdatedFields()
	if len(updated) > 0 {
		if err := deps.OrganizationStore.UpdateFields(ctx, edit.OrganizationID, updated); err != nil {
			return err
		}
	}

	if err := deps.EditStore.Delete(ctx, input.EditID); err != nil {
		return err
	}

	slog.Info("edit_event", "event", "edit_approved", "edit_id", edit.ID,
		"organization_id", edit.OrganizationID, "fields", len(updated), "reviewed_by", input.ReviewerID)

	sendOutcomeEmail(ctx, deps.EmailSender, deps.EmailFrom, deps.OrganizationStore, edit, true)
	return nil
}

// --- Reject Organization Edit ---

// RejectEditInput carries input for the reject orchestrator.
type RejectEditInput struct {
	EditID     string
	ReviewerID string // AccountID of reviewing admin
}

// RejectEditDeps holds dependencies for RejectOrganizationEdit.
type RejectEditDeps struct {
	EditStore         EditStoreForOrchestrator
	OrganizationStore OrganizationStoreForOrchestrator
	EmailSender       email.Sender // optional; nil disables outcome emails
	EmailFrom         string
}

// ExecuteRejectOrganizationEdit discards a pending edit without touching the
// organization.
// PRE: EditID is non-empty; the edit exists
// POST: Edit row removed, organization unchanged
func ExecuteRejectOrganizationEdit(ctx context.Context, input RejectEditInput, deps RejectEditDeps) error {
	if input.EditID == "" {
		return errors.New("edit ID is required")
	}

	edit, err := deps.EditStore.GetByID(ctx, input.EditID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEditNotFound, input.EditID)
	}

	if err := deps.EditStore.Delete(ctx, input.EditID); err != nil {
		return err
	}

	slog.Info("edit_event", "event", "edit_rejected", "edit_id", edit.ID,
		"organization_id", edit.OrganizationID, "reviewed_by", input.ReviewerID)

	sendOutcomeEmail(ctx, deps.EmailSender, deps.EmailFrom, deps.OrganizationStore, edit, false)
	return nil
}

// sendOutcomeEmail notifies the organization's contact address of the review
// outcome. Failures are logged, never returned; the review itself already
// succeeded.
func sendOutcomeEmail(ctx context.Context, sender email.Sender, from string, orgs OrganizationStoreForOrchestrator, edit organization.Edit, approved bool) {
	if sender == nil {
		return
	}

	org, err := orgs.GetByID(ctx, edit.OrganizationID)
	if err != nil || org.ContactEmail == "" {
		slog.Warn("edit_event", "event", "outcome_email_skipped", "edit_id", edit.ID, "error", err)
		return
	}

	subject := fmt.Sprintf("Your edit to %s was approved", org.Name)
	body := fmt.Sprintf("<p>Your proposed changes to <strong>%s</strong> have been approved and are now live.</p>", org.Name)
	if !approved {
		subject = fmt.Sprintf("Your edit to %s was rejected", org.Name)
		body = fmt.Sprintf("<p>Your proposed changes to <strong>%s</strong> were rejected. You can submit a new edit at any time.</p>", org.Name)
	}

	_, err = sender.Send(ctx, email.SendRequest{
		To:      []string{org.ContactEmail},
		From:    from,
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		slog.Warn("edit_event", "event", "outcome_email_failed", "edit_id", edit.ID, "error", err)
		return
	}
	slog.Info("edit_event", "event", "outcome_email_sent", "edit_id", edit.ID, "to", org.ContactEmail)
}
