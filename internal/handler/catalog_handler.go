package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"govt-appointments-api/internal/model"
)

// GET /api/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.Services.List()
	if err != nil {
		h.translate(w, err, "Failed to fetch services")
		return
	}
	h.respond(w, http.StatusOK, services)
}

// GET /api/services/department/{dept}
func (h *Handler) ListServicesByDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := url.PathUnescape(chi.URLParam(r, "dept"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, "invalid department")
		return
	}
	services, err := h.repo.Services.Filter(func(s model.Service) bool {
		return s.Department == dept
	})
	if err != nil {
		h.translate(w, err, "Failed to fetch services")
		return
	}
	if services == nil {
		services = []model.Service{}
	}
	h.respond(w, http.StatusOK, services)
}
