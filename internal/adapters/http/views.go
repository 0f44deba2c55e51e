package web

import (
	"context"
	"sync"
	"time"

	"clubdesk/internal/application/notify"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/application/views"
	"clubdesk/internal/domain/announcement"
	"clubdesk/internal/domain/meeting"
)

// backendProcedures adapts the orchestrator and projection layer to the
// per-session view interfaces. One instance per session carries the account
// performing the operations.
type backendProcedures struct {
	accountID string
}

func (b backendProcedures) Review(ctx context.Context, editID string) (projections.EditReviewResult, error) {
	return projections.QueryGetEditReview(ctx, editID, projections.GetEditReviewDeps{
		EditStore:         stores.EditStore,
		OrganizationStore: stores.OrganizationStore,
	})
}

func (b backendProcedures) Approve(ctx context.Context, editID string) error {
	return orchestrators.ExecuteApproveOrganizationEdit(ctx,
		orchestrators.ApproveEditInput{EditID: editID, ReviewerID: b.accountID},
		orchestrators.ApproveEditDeps{
			EditStore:         stores.EditStore,
			OrganizationStore: stores.OrganizationStore,
			EmailSender:       emailSender,
			EmailFrom:         emailFromAddress,
		})
}

func (b backendProcedures) Reject(ctx context.Context, editID string) error {
	return orchestrators.ExecuteRejectOrganizationEdit(ctx,
		orchestrators.RejectEditInput{EditID: editID, ReviewerID: b.accountID},
		orchestrators.RejectEditDeps{
			EditStore:         stores.EditStore,
			OrganizationStore: stores.OrganizationStore,
			EmailSender:       emailSender,
			EmailFrom:         emailFromAddress,
		})
}

func (b backendProcedures) DayMeetings(ctx context.Context, day time.Time) ([]meeting.Meeting, error) {
	return projections.QueryGetDayMeetings(ctx, day, projections.GetDayMeetingsDeps{
		MeetingStore: stores.MeetingStore,
	})
}

func (b backendProcedures) List(ctx context.Context) ([]announcement.Announcement, error) {
	return stores.AnnouncementStore.List(ctx)
}

func (b backendProcedures) Create(ctx context.Context, content string) (announcement.Announcement, error) {
	return orchestrators.ExecuteCreateAnnouncement(ctx,
		orchestrators.CreateAnnouncementInput{Content: content, CreatedBy: b.accountID},
		orchestrators.CreateAnnouncementDeps{
			AnnouncementStore: stores.AnnouncementStore,
			GenerateID:        generateID,
			Now:               timeNow,
		})
}

func (b backendProcedures) Delete(ctx context.Context, id string) error {
	return orchestrators.ExecuteDeleteAnnouncement(ctx,
		orchestrators.DeleteAnnouncementInput{AnnouncementID: id, DeletedBy: b.accountID},
		orchestrators.DeleteAnnouncementDeps{AnnouncementStore: stores.AnnouncementStore})
}

func (b backendProcedures) PendingEdit(ctx context.Context, organizationID string) (projections.PendingEditResult, error) {
	return projections.QueryGetPendingEdit(ctx, organizationID, projections.GetPendingEditDeps{
		EditStore: stores.EditStore,
	})
}

// sessionViews bundles the stateful view instances for one session. Views
// are created lazily on first use of their page.
type sessionViews struct {
	queue    *notify.Queue
	calendar *views.CalendarView
	board    *views.AnnouncementBoard
	panel    *views.EditReviewPanel
	page     *views.SubmissionPage
	lastSeen time.Time
}

// close ends every view the session created. Later results of calls still
// in flight are dropped by the views themselves.
func (sv *sessionViews) close() {
	if sv.calendar != nil {
		sv.calendar.Close()
	}
	if sv.board != nil {
		sv.board.Close()
	}
	if sv.panel != nil {
		sv.panel.Close()
	}
	if sv.page != nil {
		sv.page.Close()
	}
}

// viewRegistry maps session tokens to their view instances. Entries for
// sessions idle longer than the session lifetime are pruned periodically.
type viewRegistry struct {
	mu      sync.Mutex
	entries map[string]*sessionViews
}

func newViewRegistry() *viewRegistry {
	vr := &viewRegistry{entries: make(map[string]*sessionViews)}
	go func() {
		for {
			time.Sleep(time.Hour)
			vr.mu.Lock()
			for token, sv := range vr.entries {
				if time.Since(sv.lastSeen) > 24*time.Hour {
					sv.close()
					delete(vr.entries, token)
				}
			}
			vr.mu.Unlock()
		}
	}()
	return vr
}

// forToken returns (creating if absent) the view bundle for a session token.
func (vr *viewRegistry) forToken(token string) *sessionViews {
	vr.mu.Lock()
	defer vr.mu.Unlock()
	sv, ok := vr.entries[token]
	if !ok {
		sv = &sessionViews{queue: notify.NewQueue()}
		vr.entries[token] = sv
	}
	sv.lastSeen = time.Now()
	return sv
}

// drop closes and removes the bundle for a token (on logout).
func (vr *viewRegistry) drop(token string) {
	vr.mu.Lock()
	defer vr.mu.Unlock()
	if sv, ok := vr.entries[token]; ok {
		sv.close()
		delete(vr.entries, token)
	}
}

func (sv *sessionViews) calendarView(ctx context.Context, accountID string) *views.CalendarView {
	if sv.calendar == nil {
		sv.calendar = views.NewCalendarView(ctx, backendProcedures{accountID: accountID}, sv.queue, timeNow())
	}
	return sv.calendar
}

func (sv *sessionViews) announcementBoard(ctx context.Context, accountID string) *views.AnnouncementBoard {
	if sv.board == nil {
		sv.board = views.NewAnnouncementBoard(ctx, backendProcedures{accountID: accountID}, sv.queue)
	}
	return sv.board
}

func (sv *sessionViews) editReviewPanel(accountID string) *views.EditReviewPanel {
	if sv.panel == nil {
		sv.panel = views.NewEditReviewPanel(backendProcedures{accountID: accountID}, sv.queue, nil)
	}
	return sv.panel
}

func (sv *sessionViews) submissionPage(ctx context.Context, accountID, organizationID string) *views.SubmissionPage {
	// A fresh page per organization keeps the seeded values current.
	if sv.page == nil || sv.page.OrganizationID() != organizationID {
		if sv.page != nil {
			sv.page.Close()
		}
		sv.page = views.NewSubmissionPage(ctx, backendProcedures{accountID: accountID}, sv.queue, organizationID)
	}
	return sv.page
}
