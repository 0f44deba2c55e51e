// Package views holds the stateful presentation components of the admin
// surface. Each component owns its local state (cached data, pending
// notifications) the way the original panels did; the HTTP adapter keeps one
// set per session.
package views

import (
	"context"
	"log/slog"

	"clubdesk/internal/application/notify"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/organization"
)

// User-facing notification texts for the edit-review panel.
const (
	msgFetchOrganizationFailed = "Could not fetch current organization data. Please contact it@stuysu.org for support."
	msgEditApproved            = "Organization edit approved!"
	msgEditRejected            = "Organization edit rejected."
	msgApproveFailed           = "Error updating organization. Contact it@stuysu.org for support."
	msgRejectFailed            = "Error deleting organization edit. Contact it@stuysu.org for support."
)

// EditProcedures is the backend surface the panel reviews edits through.
type EditProcedures interface {
	Review(ctx context.Context, editID string) (projections.EditReviewResult, error)
	Approve(ctx context.Context, editID string) error
	Reject(ctx context.Context, editID string) error
}

// EditReviewPanel presents one pending edit as a field-by-field diff and
// resolves it. The comparison data is loaded when the edit is set; a failed
// load leaves the diff empty but the panel usable (fail-open), so approve
// and reject still work.
type EditReviewPanel struct {
	procedures EditProcedures
	notifier   notify.Notifier
	life       lifetime

	edit     organization.Edit
	review   projections.EditReviewResult
	resolved func(editID string) // fires after a successful approve or reject
}

// NewEditReviewPanel creates a panel. resolved may be nil.
func NewEditReviewPanel(procedures EditProcedures, notifier notify.Notifier, resolved func(editID string)) *EditReviewPanel {
	return &EditReviewPanel{
		procedures: procedures,
		notifier:   notifier,
		life:       newLifetime(context.Background()),
		resolved:   resolved,
	}
}

// Close ends the panel. Results of in-flight backend calls are dropped and
// the resolved callback no longer fires.
func (p *EditReviewPanel) Close() {
	p.life.close()
}

// SetEdit points the panel at a pending edit and loads the live values its
// changed fields would replace. Setting the same edit again re-fetches;
// the comparison is never served stale across edits.
// POST: on fetch failure the diff is empty and an error notification queued
func (p *EditReviewPanel) SetEdit(ctx context.Context, edit organization.Edit) {
	if p.life.closed {
		return
	}
	p.edit = edit

	callCtx, done := p.life.bound(ctx)
	review, err := p.procedures.Review(callCtx, edit.ID)
	done()
	if p.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "edit_review", "event", "load_failed", "edit_id", edit.ID, "error", err)
		p.review = projections.EditReviewResult{Edit: edit, CurrentValues: map[string]string{}}
		p.notifier.Error(msgFetchOrganizationFailed)
		return
	}
	p.review = review
}

// Edit returns the edit under review.
func (p *EditReviewPanel) Edit() organization.Edit {
	return p.edit
}

// ChangedFields returns the fields the edit proposes to change, allow-list order.
func (p *EditReviewPanel) ChangedFields() []string {
	return p.review.ChangedFields
}

// CurrentValue returns the live value a changed field would replace.
func (p *EditReviewPanel) CurrentValue(field string) string {
	return p.review.CurrentValue(field)
}

// ProposedValue returns the value the edit proposes for a field.
func (p *EditReviewPanel) ProposedValue(field string) string {
	return p.review.ProposedValue(field)
}

// Approve applies the edit. The resolved callback fires only on success.
// POST: success and failure each queue exactly one notification
func (p *EditReviewPanel) Approve(ctx context.Context) {
	if p.life.closed {
		return
	}
	callCtx, done := p.life.bound(ctx)
	err := p.procedures.Approve(callCtx, p.edit.ID)
	done()
	if p.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "edit_review", "event", "approve_failed", "edit_id", p.edit.ID, "error", err)
		p.notifier.Error(msgApproveFailed)
		return
	}
	p.notifier.Success(msgEditApproved)
	if p.resolved != nil {
		p.resolved(p.edit.ID)
	}
}

// Reject discards the edit. The resolved callback fires only on success.
// POST: success and failure each queue exactly one notification
func (p *EditReviewPanel) Reject(ctx context.Context) {
	if p.life.closed {
		return
	}
	callCtx, done := p.life.bound(ctx)
	err := p.procedures.Reject(callCtx, p.edit.ID)
	done()
	if p.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "edit_review", "event", "reject_failed", "edit_id", p.edit.ID, "error", err)
		p.notifier.Error(msgRejectFailed)
		return
	}
	p.notifier.Success(msgEditRejected)
	if p.resolved != nil {
		p.resolved(p.edit.ID)
	}
}
