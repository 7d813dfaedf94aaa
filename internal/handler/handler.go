package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"govt-appointments-api/internal/analytics"
	"govt-appointments-api/internal/booking"
	"govt-appointments-api/internal/repo"
)

// Handler wires the HTTP surface to the lifecycle service, repository and
// aggregator. It owns input parsing and error translation, nothing else.
type Handler struct {
	repo      *repo.Repo
	booking   *booking.Service
	analytics *analytics.Aggregator
	secret    string
	log       zerolog.Logger
}

func New(r *repo.Repo, b *booking.Service, a *analytics.Aggregator, secret string, log zerolog.Logger) *Handler {
	return &Handler{repo: r, booking: b, analytics: a, secret: secret, log: log}
}

func (h *Handler) respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("encode response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, code int, msg string) {
	h.respond(w, code, map[string]string{"error": msg})
}

// translate maps service errors to the status-code classes the UI
// expects: bad reference 400, missing record 404, anything else 500.
// Bodies stay a single generic string.
func (h *Handler) translate(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, booking.ErrInvalidRef):
		h.fail(w, http.StatusBadRequest, "Invalid service or user")
	case errors.Is(err, booking.ErrBadTransition):
		h.fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrNotFound):
		h.fail(w, http.StatusNotFound, "Appointment not found")
	default:
		h.log.Error().Err(err).Msg(fallback)
		h.fail(w, http.StatusInternalServerError, fallback)
	}
}
