package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"nutq/internal/session"
)

// Auth handles opening and closing the caregiver lock. A single shared
// passcode guards the admin surface; there are no user accounts on a
// device that belongs to one child.
type Auth struct {
	sessions     *session.Store
	passcodeHash []byte
}

// NewAuth creates an Auth handler group. The passcode is hashed once at
// startup so the plaintext never lingers in memory.
func NewAuth(sessions *session.Store, passcode string) (*Auth, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Auth{sessions: sessions, passcodeHash: hash}, nil
}

// Login verifies the passcode and opens a caregiver session. The route is
// rate-limited upstream, so brute-forcing the passcode trips the limiter
// long before bcrypt becomes the bottleneck.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passcode string `json:"passcode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if bcrypt.CompareHashAndPassword(a.passcodeHash, []byte(req.Passcode)) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid passcode.")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{}); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Logout closes the caregiver lock and clears the session cookie.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
