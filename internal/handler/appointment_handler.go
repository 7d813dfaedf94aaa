package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"govt-appointments-api/internal/booking"
	"govt-appointments-api/internal/model"
)

// POST /api/appointments
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ServiceID int    `json:"serviceId"`
		UserID    int    `json:"userId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Notes     string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "malformed body")
		return
	}
	if body.Date == "" || body.Time == "" {
		h.fail(w, http.StatusBadRequest, "date and time required")
		return
	}

	apt, err := h.booking.Book(body.ServiceID, body.UserID, body.Date, body.Time, body.Notes)
	if err != nil {
		h.translate(w, err, "Failed to book appointment")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"success": true, "appointment": apt})
}

// GET /api/appointments/user/{userId}
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid user id")
		return
	}
	apts, err := h.repo.Appointments.Filter(func(a model.Appointment) bool {
		return a.UserID == userID
	})
	if err != nil {
		h.translate(w, err, "Failed to fetch appointments")
		return
	}
	if apts == nil {
		apts = []model.Appointment{}
	}
	h.respond(w, http.StatusOK, apts)
}

// GET /api/appointments/department/{dept}
func (h *Handler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := url.PathUnescape(chi.URLParam(r, "dept"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid department")
		return
	}
	apts, err := h.repo.Appointments.Filter(func(a model.Appointment) bool {
		return a.Department == dept
	})
	if err != nil {
		h.translate(w, err, "Failed to fetch appointments")
		return
	}
	if apts == nil {
		apts = []model.Appointment{}
	}
	h.respond(w, http.StatusOK, apts)
}

// PUT /api/appointments/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		h.fail(w, http.StatusBadRequest, "status required")
		return
	}

	apt, err := h.booking.UpdateStatus(chi.URLParam(r, "id"), body.Status)
	if err != nil {
		h.translate(w, err, "Failed to update appointment")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"success": true, "appointment": apt})
}

// POST /api/appointments/{id}/documents  (multipart, field "documents")
func (h *Handler) AttachDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.fail(w, http.StatusBadRequest, "malformed upload")
		return
	}
	headers := r.MultipartForm.File["documents"]
	if len(headers) == 0 {
		h.fail(w, http.StatusBadRequest, "no documents provided")
		return
	}

	files := make([]booking.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.fail(w, http.StatusBadRequest, "malformed upload")
			return
		}
		defer f.Close()
		files = append(files, booking.Upload{Name: fh.Filename, Body: f})
	}

	docs, err := h.booking.AttachDocuments(chi.URLParam(r, "id"), files)
	if err != nil {
		h.translate(w, err, "Failed to upload documents")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"success": true, "documents": docs})
}
