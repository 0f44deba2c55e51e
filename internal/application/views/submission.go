package views

import (
	"context"
	"log/slog"

	"clubdesk/internal/application/notify"
	"clubdesk/internal/application/projections"
)

const msgFetchEditsFailed = "Error fetching organization edits. Contact it@stuysu.org for support."

// PendingEditLoader loads an organization's pending edit.
type PendingEditLoader interface {
	PendingEdit(ctx context.Context, organizationID string) (projections.PendingEditResult, error)
}

// SubmissionPage seeds the organization edit form from the pending edit, when
// one exists. With no pending edit every field starts undefined and the form
// shows the live profile values.
type SubmissionPage struct {
	loader   PendingEditLoader
	notifier notify.Notifier
	life     lifetime

	organizationID string
	pending        projections.PendingEditResult
}

// NewSubmissionPage creates the page for an organization and loads its
// pending edit.
func NewSubmissionPage(ctx context.Context, loader PendingEditLoader, notifier notify.Notifier, organizationID string) *SubmissionPage {
	p := &SubmissionPage{
		loader:         loader,
		notifier:       notifier,
		life:           newLifetime(ctx),
		organizationID: organizationID,
	}
	p.load(ctx)
	return p
}

// Close ends the page. Results of in-flight loads are dropped.
func (p *SubmissionPage) Close() {
	p.life.close()
}

// load fetches the pending edit. A fetch failure queues an error
// notification; having no pending edit is a normal empty state.
func (p *SubmissionPage) load(ctx context.Context) {
	if p.life.closed {
		return
	}
	callCtx, done := p.life.bound(ctx)
	result, err := p.loader.PendingEdit(callCtx, p.organizationID)
	done()
	if p.life.closed {
		return
	}
	if err != nil {
		slog.Warn("view_event", "view", "submission", "event", "load_failed", "organization_id", p.organizationID, "error", err)
		p.notifier.Error(msgFetchEditsFailed)
		return
	}
	p.pending = result
}

// OrganizationID returns the organization this page edits.
func (p *SubmissionPage) OrganizationID() string {
	return p.organizationID
}

// Reload refetches the pending edit, e.g. after a submission.
func (p *SubmissionPage) Reload(ctx context.Context) {
	p.load(ctx)
}

// HasPending reports whether a pending edit seeds the form.
func (p *SubmissionPage) HasPending() bool {
	return p.pending.Found
}

// SeedValues returns the pending edit's proposed values keyed by field name.
// Fields without a proposal are absent, leaving them undefined in the form.
func (p *SubmissionPage) SeedValues() map[string]string {
	if !p.pending.Found {
		return map[string]string{}
	}
	return p.pending.Edit.UpdatedFields()
}

// PendingEditID returns the id of the pending edit, or "" when none exists.
func (p *SubmissionPage) PendingEditID() string {
	if !p.pending.Found {
		return ""
	}
	return p.pending.Edit.ID
}
