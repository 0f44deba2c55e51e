package views

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"clubdesk/internal/application/notify"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/organization"
)

// mockPendingLoader implements PendingEditLoader.
type mockPendingLoader struct {
	result projections.PendingEditResult
	err    error
}

func (m *mockPendingLoader) PendingEdit(_ context.Context, _ string) (projections.PendingEditResult, error) {
	if m.err != nil {
		return projections.PendingEditResult{}, m.err
	}
	return m.result, nil
}

// TestSubmissionPage_SeedsFromPendingEdit verifies proposed values seed the
// form.
func TestSubmissionPage_SeedsFromPendingEdit(t *testing.T) {
	loader := &mockPendingLoader{result: projections.PendingEditResult{
		Found: true,
		Edit: organization.Edit{
			ID:             "edit-7",
			OrganizationID: "org-3",
			Name:           strPtr("New Chess Club"),
			Mission:        strPtr("A new mission statement."),
		},
	}}
	q := notify.NewQueue()

	page := NewSubmissionPage(context.Background(), loader, q, "org-3")

	if !page.HasPending() {
		t.Fatal("HasPending = false, want true")
	}
	if page.PendingEditID() != "edit-7" {
		t.Errorf("PendingEditID = %q, want edit-7", page.PendingEditID())
	}
	want := map[string]string{"name": "New Chess Club", "mission": "A new mission statement."}
	if !reflect.DeepEqual(page.SeedValues(), want) {
		t.Errorf("SeedValues = %v, want %v", page.SeedValues(), want)
	}
}

// TestSubmissionPage_NoPendingEdit verifies an empty state with no
// notification.
func TestSubmissionPage_NoPendingEdit(t *testing.T) {
	loader := &mockPendingLoader{}
	q := notify.NewQueue()

	page := NewSubmissionPage(context.Background(), loader, q, "org-3")

	if page.HasPending() {
		t.Error("HasPending = true, want false")
	}
	if len(page.SeedValues()) != 0 {
		t.Errorf("SeedValues = %v, want empty", page.SeedValues())
	}
	if got := q.Drain(); len(got) != 0 {
		t.Errorf("notifications = %v, want none", got)
	}
}

// TestSubmissionPage_LoadFailure verifies the fetch error text.
func TestSubmissionPage_LoadFailure(t *testing.T) {
	loader := &mockPendingLoader{err: errors.New("db down")}
	q := notify.NewQueue()

	NewSubmissionPage(context.Background(), loader, q, "org-3")

	got := q.Drain()
	if len(got) != 1 || got[0].Message != "Error fetching organization edits. Contact it@stuysu.org for support." {
		t.Errorf("notifications = %v, want the fetch error text", got)
	}
}
