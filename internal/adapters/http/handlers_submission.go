package web

import (
	"errors"
	"net/http"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/domain/account"
	"clubdesk/internal/domain/organization"
)

// canEditOrganization reports whether the session may touch the given
// organization's submission page.
func canEditOrganization(sess middleware.Session, organizationID string) bool {
	return sess.Role == account.RoleAdmin || sess.OrganizationID == organizationID
}

// submissionResponse is the JSON shape of the submission page state.
type submissionResponse struct {
	OrganizationID string            `json:"organization_id"`
	HasPending     bool              `json:"has_pending"`
	PendingEditID  string            `json:"pending_edit_id,omitempty"`
	SeedValues     map[string]string `json:"seed_values"`
	Current        map[string]string `json:"current"`
}

// handleOrganizationEdit handles GET (page state) and POST (submit proposal)
// for /api/organization/edit?organization_id=
func handleOrganizationEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	orgID := r.URL.Query().Get("organization_id")
	if orgID == "" {
		orgID = sess.OrganizationID
	}
	if orgID == "" {
		http.Error(w, "missing organization_id", http.StatusBadRequest)
		return
	}
	if !canEditOrganization(sess, orgID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	sv := viewReg.forToken(sess.Token)

	switch r.Method {
	case "GET":
		page := sv.submissionPage(ctx, sess.AccountID, orgID)

		current, err := stores.OrganizationStore.GetFields(ctx, orgID, organization.EditableFields)
		if err != nil {
			internalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, submissionResponse{
			OrganizationID: orgID,
			HasPending:     page.HasPending(),
			PendingEditID:  page.PendingEditID(),
			SeedValues:     page.SeedValues(),
			Current:        current,
		})

	case "POST":
		var input struct {
			Fields map[string]string `json:"fields"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		edit, err := orchestrators.ExecuteSubmitOrganizationEdit(ctx,
			orchestrators.SubmitEditInput{
				OrganizationID: orgID,
				Fields:         input.Fields,
				SubmittedBy:    sess.AccountID,
			},
			orchestrators.SubmitEditDeps{
				EditStore:         stores.EditStore,
				OrganizationStore: stores.OrganizationStore,
				GenerateID:        generateID,
				Now:               timeNow,
			})
		if err != nil {
			var fieldErr *orchestrators.FieldRuleError
			switch {
			case errors.As(err, &fieldErr):
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
					"error": fieldErr.Error(),
					"field": fieldErr.Field,
				})
			case errors.Is(err, orchestrators.ErrNoProposedChanges):
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error": err.Error(),
				})
			case errors.Is(err, orchestrators.ErrOrganizationNotFound):
				http.Error(w, "organization not found", http.StatusNotFound)
			default:
				internalError(w, err)
			}
			return
		}

		// Refresh the page state so the form re-seeds from the new edit.
		page := sv.submissionPage(ctx, sess.AccountID, orgID)
		page.Reload(ctx)

		writeJSON(w, http.StatusCreated, map[string]any{
			"edit_id":        edit.ID,
			"changed_fields": edit.ChangedFields(),
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleOrganizationPage renders the submission form.
func handleOrganizationPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	orgID := r.URL.Query().Get("organization_id")
	if orgID == "" {
		orgID = sess.OrganizationID
	}
	if orgID == "" || !canEditOrganization(sess, orgID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	sv := viewReg.forToken(sess.Token)
	page := sv.submissionPage(r.Context(), sess.AccountID, orgID)

	current, err := stores.OrganizationStore.GetFields(r.Context(), orgID, organization.EditableFields)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "organization.html", map[string]any{
		"OrganizationID": orgID,
		"Fields":         organization.EditableFields,
		"Current":        current,
		"SeedValues":     page.SeedValues(),
		"HasPending":     page.HasPending(),
		"Notifications":  sv.queue.Drain(),
	})
}
