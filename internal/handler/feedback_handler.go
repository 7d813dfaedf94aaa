package handler

import (
	"encoding/json"
	"net/http"
)

// POST /api/feedback
// Rating bounds and appointment state are deliberately not checked; see
// the lifecycle service.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AppointmentID string `json:"appointmentId"`
		UserID        int    `json:"userId"`
		Rating        int    `json:"rating"`
		Comment       string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "malformed body")
		return
	}

	fb, err := h.booking.SubmitFeedback(body.AppointmentID, body.UserID, body.Rating, body.Comment)
	if err != nil {
		h.translate(w, err, "Failed to submit feedback")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"success": true, "feedback": fb})
}

// GET /api/analytics
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.Summary()
	if err != nil {
		h.translate(w, err, "Failed to compute analytics")
		return
	}
	h.respond(w, http.StatusOK, summary)
}
