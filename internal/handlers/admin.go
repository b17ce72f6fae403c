// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nutq/internal/board"
	"nutq/internal/media"
	"nutq/internal/models"
	"nutq/internal/speech"
)

// Admin groups the caregiver-facing HTTP handlers. All of them sit behind
// the caregiver lock middleware.
type Admin struct {
	session *board.Session
	storage *media.Client // nil when object storage is not configured
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(session *board.Session, storage *media.Client) *Admin {
	return &Admin{session: session, storage: storage}
}

// ListCards returns every card in the catalog, independent of the board's
// active filter.
func (a *Admin) ListCards(w http.ResponseWriter, r *http.Request) {
	cards := a.session.Cards()
	if cards == nil {
		cards = []models.Card{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

// CreateCard validates and persists a new card. The server assigns the id;
// timestamps are stamped by the repository.
func (a *Admin) CreateCard(w http.ResponseWriter, r *http.Request) {
	var card models.Card
	if err := decodeJSON(r, &card); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateCard(card); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	card.ID = models.NewID()
	card.CreatedAt, card.UpdatedAt = 0, 0

	if err := a.upsertCard(w, r, card); err != nil {
		return
	}
	stored, _ := a.session.Card(card.ID)
	respondJSON(w, http.StatusCreated, stored)
}

// UpdateCard validates and persists changes to an existing card.
func (a *Admin) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.session.Card(id); !ok {
		respondError(w, http.StatusNotFound, "Card not found.")
		return
	}

	var card models.Card
	if err := decodeJSON(r, &card); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	card.ID = id
	if msg := validateCard(card); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := a.upsertCard(w, r, card); err != nil {
		return
	}
	stored, _ := a.session.Card(id)
	respondJSON(w, http.StatusOK, stored)
}

// upsertCard writes the card through the session and reports any store
// failure to the client. Returns the error so callers can stop.
func (a *Admin) upsertCard(w http.ResponseWriter, r *http.Request, card models.Card) error {
	err := a.session.UpsertCard(r.Context(), card)
	if err != nil {
		if errors.Is(err, board.ErrNotReady) {
			respondError(w, http.StatusServiceUnavailable, "Board is still loading.")
			return err
		}
		slog.Error("card save failed", "card", card.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save card.")
	}
	return err
}

// DeleteCard removes a card from the catalog. Deleting an unknown id is a
// no-op; phrase words already buffered keep their denormalized labels.
func (a *Admin) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.session.RemoveCard(r.Context(), id); err != nil {
		slog.Error("card delete failed", "card", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete card.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories returns every category sorted by order key.
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := a.session.Categories()
	if categories == nil {
		categories = []models.Category{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// CreateCategory validates and persists a new category.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var cat models.Category
	if err := decodeJSON(r, &cat); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateCategory(cat); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	cat.ID = models.NewID()
	if err := a.upsertCategory(w, r, cat); err != nil {
		return
	}
	respondJSON(w, http.StatusCreated, cat)
}

// UpdateCategory validates and persists changes to an existing category.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.session.Category(id); !ok {
		respondError(w, http.StatusNotFound, "Category not found.")
		return
	}

	var cat models.Category
	if err := decodeJSON(r, &cat); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	cat.ID = id
	if msg := validateCategory(cat); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := a.upsertCategory(w, r, cat); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

func (a *Admin) upsertCategory(w http.ResponseWriter, r *http.Request, cat models.Category) error {
	err := a.session.UpsertCategory(r.Context(), cat)
	if err != nil {
		if errors.Is(err, board.ErrNotReady) {
			respondError(w, http.StatusServiceUnavailable, "Board is still loading.")
			return err
		}
		slog.Error("category save failed", "category", cat.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save category.")
	}
	return err
}

// DeleteCategory removes a category and every non-core card that belongs
// to it. Core cards survive with a dangling category reference.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.session.RemoveCategory(r.Context(), id); err != nil {
		slog.Error("category delete failed", "category", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete category.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateSettings replaces the caregiver preferences wholesale.
func (a *Admin) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.SettingsState
	if err := decodeJSON(r, &settings); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if msg := validateSettings(settings); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := a.session.UpdateSettings(r.Context(), settings); err != nil {
		if errors.Is(err, board.ErrNotReady) {
			respondError(w, http.StatusServiceUnavailable, "Board is still loading.")
			return
		}
		slog.Error("settings save failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save settings.")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// StartRecording begins an audio capture for a card clip. At most one
// recording is in flight at a time.
func (a *Admin) StartRecording(w http.ResponseWriter, r *http.Request) {
	err := a.session.StartRecording(r.Context())
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, speech.ErrNoRecorder):
		respondError(w, http.StatusServiceUnavailable, "No recorder is available.")
	case errors.Is(err, speech.ErrRecordingActive):
		respondError(w, http.StatusConflict, "A recording is already in progress.")
	case errors.Is(err, speech.ErrPermissionDenied):
		respondError(w, http.StatusForbidden, "Microphone permission denied.")
	default:
		slog.Error("recording start failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to start recording.")
	}
}

// StopRecording finalizes the capture and returns the clip URI to attach
// to a card.
func (a *Admin) StopRecording(w http.ResponseWriter, r *http.Request) {
	uri, err := a.session.StopRecording(r.Context())
	if err != nil {
		if errors.Is(err, speech.ErrNoRecording) {
			respondError(w, http.StatusConflict, "No recording is in progress.")
			return
		}
		slog.Error("recording stop failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to stop recording.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"audioUri": uri})
}
