package web

import (
	"net/http"
	"time"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/domain/announcement"
)

// announcementJSON is the JSON shape of a board entry.
type announcementJSON struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func toAnnouncementJSON(a announcement.Announcement) announcementJSON {
	return announcementJSON{
		ID:        a.ID,
		Content:   a.Content,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// handleAnnouncementsAPI handles GET/POST/DELETE for /api/announcements
// through the session's board view. POST and DELETE are admin only.
func handleAnnouncementsAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	sv := viewReg.forToken(sess.Token)
	board := sv.announcementBoard(ctx, sess.AccountID)

	switch r.Method {
	case "GET":
		items := board.Announcements()
		out := make([]announcementJSON, 0, len(items))
		for _, a := range items {
			out = append(out, toAnnouncementJSON(a))
		}
		writeJSON(w, http.StatusOK, out)

	case "POST":
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		var input struct {
			Content string `json:"content"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		before := len(board.Announcements())
		board.Create(ctx, input.Content)

		items := board.Announcements()
		out := make([]announcementJSON, 0, len(items))
		for _, a := range items {
			out = append(out, toAnnouncementJSON(a))
		}
		// 201 only when a row was inserted; a rejected or failed create
		// reports its outcome through the notification queue.
		status := http.StatusOK
		if len(items) > before {
			status = http.StatusCreated
		}
		writeJSON(w, status, out)

	case "DELETE":
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		board.Delete(ctx, id)

		items := board.Announcements()
		out := make([]announcementJSON, 0, len(items))
		for _, a := range items {
			out = append(out, toAnnouncementJSON(a))
		}
		writeJSON(w, http.StatusOK, out)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAnnouncementsPage renders the board. Content is shown as rendered
// markdown via the renderMarkdown template func.
func handleAnnouncementsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sv := viewReg.forToken(sess.Token)
	board := sv.announcementBoard(r.Context(), sess.AccountID)

	renderTemplate(w, r, "announcements.html", map[string]any{
		"Announcements": board.Announcements(),
		"Notifications": sv.queue.Drain(),
	})
}
