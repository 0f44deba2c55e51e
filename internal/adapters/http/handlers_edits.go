package web

import (
	"database/sql"
	"errors"
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/domain/organization"
)

// editSummary is the JSON shape for a pending edit in list responses.
type editSummary struct {
	ID               string `json:"id"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	CreatedAt        string `json:"created_at"`
	ChangedFields    int    `json:"changed_fields"`
}

// handleEditsAPI handles GET /api/edits — the pending edit queue. With
// ?organization_id= it returns that organization's pending edit (officers
// may only query their own); without, the full queue (admin only).
func handleEditsAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var edits []organization.Edit
	if orgID := r.URL.Query().Get("organization_id"); orgID != "" {
		if !middleware.IsAdmin(r.Context()) && sess.OrganizationID != orgID {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		edit, err := stores.EditStore.GetByOrganization(r.Context(), orgID)
		if err == nil {
			edits = []organization.Edit{edit}
		} else if !errors.Is(err, sql.ErrNoRows) {
			internalError(w, err)
			return
		}
	} else {
		if !middleware.IsAdmin(r.Context()) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		var err error
		edits, err = stores.EditStore.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
	}

	summaries := make([]editSummary, 0, len(edits))
	for _, e := range edits {
		summaries = append(summaries, editSummary{
			ID:               e.ID,
			OrganizationID:   e.OrganizationID,
			OrganizationName: e.OrganizationName,
			CreatedAt:        e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			ChangedFields:    len(e.ChangedFields()),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

// reviewResponse is the JSON shape of the side-by-side comparison.
type reviewResponse struct {
	EditID           string            `json:"edit_id"`
	OrganizationID   string            `json:"organization_id"`
	OrganizationName string            `json:"organization_name"`
	ChangedFields    []string          `json:"changed_fields"`
	Current          map[string]string `json:"current"`
	Proposed         map[string]string `json:"proposed"`
}

// loadPanel fetches the edit and points the session's review panel at it.
func loadPanel(w http.ResponseWriter, r *http.Request, editID string) (sv *sessionViews, ok bool) {
	sess, authed := middleware.GetSessionFromContext(r.Context())
	if !authed {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return nil, false
	}

	edit, err := stores.EditStore.GetByID(r.Context(), editID)
	if err != nil {
		http.Error(w, "edit not found", http.StatusNotFound)
		return nil, false
	}

	sv = viewReg.forToken(sess.Token)
	panel := sv.editReviewPanel(sess.AccountID)
	panel.SetEdit(r.Context(), edit)
	return sv, true
}

func panelResponse(sv *sessionViews, accountID string) reviewResponse {
	panel := sv.editReviewPanel(accountID)
	edit := panel.Edit()
	resp := reviewResponse{
		EditID:           edit.ID,
		OrganizationID:   edit.OrganizationID,
		OrganizationName: edit.OrganizationName,
		ChangedFields:    panel.ChangedFields(),
		Current:          map[string]string{},
		Proposed:         map[string]string{},
	}
	for _, field := range resp.ChangedFields {
		resp.Current[field] = panel.CurrentValue(field)
		resp.Proposed[field] = panel.ProposedValue(field)
	}
	return resp
}

// handleEditReviewAPI handles GET /api/edits/review?id= (admin only).
func handleEditReviewAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	editID := r.URL.Query().Get("id")
	if editID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	sv, ok := loadPanel(w, r, editID)
	if !ok {
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, panelResponse(sv, sess.AccountID))
}

// handleEditApprove handles POST /api/edits/approve (admin only).
func handleEditApprove(w http.ResponseWriter, r *http.Request) {
	resolveEdit(w, r, true)
}

// handleEditReject handles POST /api/edits/reject (admin only).
func handleEditReject(w http.ResponseWriter, r *http.Request) {
	resolveEdit(w, r, false)
}

// resolveEdit routes an approve or reject through the session's panel so
// the outcome notification lands in the session queue.
func resolveEdit(w http.ResponseWriter, r *http.Request, approve bool) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var input struct {
		ID string `json:"id"`
	}
	if err := strictDecode(r, &input); err != nil || input.ID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	sv, ok := loadPanel(w, r, input.ID)
	if !ok {
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())
	panel := sv.editReviewPanel(sess.AccountID)
	if approve {
		panel.Approve(r.Context())
	} else {
		panel.Reject(r.Context())
	}

	// The panel reports the outcome through the notification queue; the
	// client picks it up from /api/notifications or the next page render.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEditsPage renders the pending edit queue (admin only).
func handleEditsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	edits, err := stores.EditStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if edits == nil {
		edits = []organization.Edit{}
	}

	sess, _ := middleware.GetSessionFromContext(r.Context())
	sv := viewReg.forToken(sess.Token)

	renderTemplate(w, r, "edits.html", map[string]any{
		"Edits":         edits,
		"Notifications": sv.queue.Drain(),
	})
}

// handleEditReviewPage renders the side-by-side comparison (admin only).
func handleEditReviewPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	editID := r.URL.Query().Get("id")
	if editID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	sv, ok := loadPanel(w, r, editID)
	if !ok {
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())
	resp := panelResponse(sv, sess.AccountID)

	renderTemplate(w, r, "edit_review.html", map[string]any{
		"Review":        resp,
		"Notifications": sv.queue.Drain(),
	})
}
