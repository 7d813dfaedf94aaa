package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"govt-appointments-api/internal/auth"
	"govt-appointments-api/internal/model"
)

// POST /api/login
// Login is an email lookup, no credential check: the seeded accounts have
// no passwords. The session token exists so officer routes can be scoped
// by role.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Email) == "" {
		h.fail(w, http.StatusBadRequest, "email required")
		return
	}

	matches, err := h.repo.Users.Filter(func(u model.User) bool {
		return strings.EqualFold(u.Email, body.Email)
	})
	if err != nil {
		h.translate(w, err, "Login failed")
		return
	}
	if len(matches) == 0 {
		h.fail(w, http.StatusUnauthorized, "User not found")
		return
	}
	user := matches[0]

	tok, err := auth.MakeToken(user.ID, user.Role, user.Department, h.secret)
	if err != nil {
		h.translate(w, err, "Login failed")
		return
	}

	h.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
		"token":   tok,
	})
}
