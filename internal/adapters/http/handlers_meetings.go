package web

import (
	"net/http"
	"time"

	"clubdesk/internal/adapters/http/middleware"
	"clubdesk/internal/domain/meeting"
)

// meetingJSON is the JSON shape of a meeting on the calendar.
type meetingJSON struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	IsPublic         bool   `json:"is_public"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	RoomName         string `json:"room_name,omitempty"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
}

func toMeetingJSON(m meeting.Meeting) meetingJSON {
	return meetingJSON{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		IsPublic:         m.IsPublic,
		OrganizationID:   m.Organization.ID,
		OrganizationName: m.Organization.Name,
		RoomName:         m.Room.Name,
		StartTime:        m.StartTime.Format(time.RFC3339),
		EndTime:          m.EndTime.Format(time.RFC3339),
	}
}

// parseDayParam parses an optional date=YYYY-MM-DD query param in server
// local time. An absent param means today.
func parseDayParam(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return timeNow(), true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// handleMeetingsAPI handles GET /api/meetings?date=YYYY-MM-DD through the
// session's calendar view, so repeat requests for a day hit its cache.
func handleMeetingsAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	day, ok := parseDayParam(r)
	if !ok {
		http.Error(w, "invalid date format (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	sv := viewReg.forToken(sess.Token)
	cal := sv.calendarView(r.Context(), sess.AccountID)
	cal.SelectDay(r.Context(), day)

	meetings := cal.Meetings()
	out := make([]meetingJSON, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, toMeetingJSON(m))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"day":      meeting.DayKey(cal.SelectedDay()),
		"meetings": out,
	})
}

// handleMeetingsPage renders the calendar for a day.
func handleMeetingsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	day, ok := parseDayParam(r)
	if !ok {
		http.Error(w, "invalid date format (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	sv := viewReg.forToken(sess.Token)
	cal := sv.calendarView(r.Context(), sess.AccountID)
	cal.SelectDay(r.Context(), day)

	renderTemplate(w, r, "meetings.html", map[string]any{
		"Day":           cal.SelectedDay().Format("2006-01-02"),
		"PrevDay":       cal.SelectedDay().AddDate(0, 0, -1).Format("2006-01-02"),
		"NextDay":       cal.SelectedDay().AddDate(0, 0, 1).Format("2006-01-02"),
		"Meetings":      cal.Meetings(),
		"Notifications": sv.queue.Drain(),
	})
}
