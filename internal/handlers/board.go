// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers wires the board session to HTTP. The board API serves
// the device itself and is unauthenticated; the admin API sits behind the
// caregiver lock.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nutq/internal/board"
	"nutq/internal/speech"
)

// Board groups the open board-facing HTTP handlers.
type Board struct {
	session *board.Session
}

// NewBoard creates a new Board handler group.
func NewBoard(session *board.Session) *Board {
	return &Board{session: session}
}

// Get returns the full board snapshot: settings, sorted categories, the
// active filter, the cards visible under it, and the sentence buffer.
func (b *Board) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, b.session.Snapshot())
}

// SelectCard handles a card tap: the word joins the sentence and the
// speech directive travels back for the device to execute. A clip that
// failed to play server-side is reported alongside the directive — the
// appended word stands regardless.
func (b *Board) SelectCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	directive, err := b.session.SelectCard(r.Context(), id)
	if err != nil {
		var playback *speech.PlaybackError
		switch {
		case errors.As(err, &playback):
			slog.Warn("clip playback failed", "uri", playback.URI, "error", playback.Err)
			respondJSON(w, http.StatusOK, map[string]any{
				"directive":     directive,
				"playbackError": playback.Error(),
			})
		case errors.Is(err, board.ErrCardNotFound):
			respondError(w, http.StatusNotFound, "Card not found.")
		case errors.Is(err, board.ErrNotReady):
			respondError(w, http.StatusServiceUnavailable, "Board is still loading.")
		default:
			slog.Error("card select failed", "card", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"directive": directive})
}

// Speak synthesizes the whole sentence. An empty buffer is a 204 — no
// request ever reaches the speech engine for an empty utterance.
func (b *Board) Speak(w http.ResponseWriter, r *http.Request) {
	directive, ok, err := b.session.SpeakSentence(r.Context())
	if err != nil {
		slog.Error("sentence synthesis failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Speech synthesis failed.")
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"directive": directive})
}

// RemoveLastWord pops the last sentence word. Always succeeds; popping an
// empty sentence is a no-op.
func (b *Board) RemoveLastWord(w http.ResponseWriter, r *http.Request) {
	b.session.RemoveLastWord()
	w.WriteHeader(http.StatusNoContent)
}

// ClearSentence empties the sentence buffer.
func (b *Board) ClearSentence(w http.ResponseWriter, r *http.Request) {
	b.session.ClearSentence()
	w.WriteHeader(http.StatusNoContent)
}

// SetCategory changes the active category filter. The id is not validated;
// an unknown id just shows core cards only.
func (b *Board) SetCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	b.session.SetSelectedCategoryID(req.ID)
	w.WriteHeader(http.StatusNoContent)
}
