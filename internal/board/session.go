// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package board is the single mutation and query surface the presentation
// layer talks to. A Session owns the live catalog aggregate, the active
// category filter, and the sentence buffer, and drives the speech dispatch
// and capture collaborators. All mutations are serialized through one
// mutex, so the store never sees interleaved partial aggregates.
package board

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"nutq/internal/catalog"
	"nutq/internal/models"
	"nutq/internal/sentence"
	"nutq/internal/speech"
)

var (
	// ErrNotReady means Initialize has not completed yet.
	ErrNotReady = errors.New("board: catalog not loaded")

	// ErrCardNotFound means the tapped card id is not in the catalog.
	ErrCardNotFound = errors.New("board: card not found")
)

// Session is the application state facade. Create one per installation
// with New, then Initialize it before use.
type Session struct {
	repo       *catalog.Repository
	dispatcher *speech.Dispatcher
	capture    *speech.Capture

	// recoverCorrupt controls whether a corrupt blob is re-seeded during
	// Initialize. The event is logged loudly either way.
	recoverCorrupt bool

	mu                 sync.Mutex // held across repository awaits so writes never overlap
	data               *models.AppData
	selectedCategoryID string
	composer           *sentence.Composer
	loading            chan struct{} // non-nil while a load is in flight
	loadErr            error
}

// Option configures a Session.
type Option func(*Session)

// WithDispatcher attaches speech collaborators.
func WithDispatcher(d *speech.Dispatcher) Option {
	return func(s *Session) { s.dispatcher = d }
}

// WithRecorder attaches an audio-capture collaborator.
func WithRecorder(r speech.Recorder) Option {
	return func(s *Session) { s.capture = speech.NewCapture(r) }
}

// WithCorruptRecovery controls re-seeding on a corrupt store blob.
func WithCorruptRecovery(recover bool) Option {
	return func(s *Session) { s.recoverCorrupt = recover }
}

// New returns an uninitialized session with an empty sentence buffer and
// the core category selected.
func New(repo *catalog.Repository, opts ...Option) *Session {
	s := &Session{
		repo:               repo,
		dispatcher:         speech.NewDispatcher(nil, nil),
		capture:            speech.NewCapture(nil),
		recoverCorrupt:     true,
		selectedCategoryID: models.CoreCategoryID,
		composer:           sentence.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the catalog into the session. Idempotent: a second call
// while a load is in flight waits for that load instead of starting
// another, and a call after success is a no-op. On a corrupt blob it either
// re-seeds (when configured) or returns the *CorruptStoreError.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.data != nil {
		s.mu.Unlock()
		return nil
	}
	if s.loading != nil {
		done := s.loading
		s.mu.Unlock()
		<-done
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.data != nil {
			return nil
		}
		return s.loadErr
	}
	done := make(chan struct{})
	s.loading = done
	s.mu.Unlock()

	data, err := s.repo.Load(ctx)

	var corrupt *catalog.CorruptStoreError
	if errors.As(err, &corrupt) {
		slog.Error("stored catalog is corrupt",
			"key", corrupt.Key,
			"error", corrupt.Err,
			"recovering", s.recoverCorrupt,
		)
		if s.recoverCorrupt {
			data, err = s.repo.Reseed(ctx)
		}
	}

	s.mu.Lock()
	if err == nil {
		s.data = &data
	}
	s.loadErr = err
	s.loading = nil
	close(done)
	s.mu.Unlock()
	return err
}

// Ready reports whether the catalog has been loaded.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data != nil
}

// Snapshot is a consistent view of the session for the presentation layer.
type Snapshot struct {
	Ready              bool                 `json:"ready"`
	Settings           models.SettingsState `json:"settings"`
	Categories         []models.Category    `json:"categories"`
	SelectedCategoryID string               `json:"selectedCategoryId"`
	VisibleCards       []models.Card        `json:"visibleCards"`
	Sentence           []models.PhraseWord  `json:"sentence"`
}

// Snapshot returns the current session view. Categories come sorted by
// their order key; visible cards follow the category filter plus core rule.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SelectedCategoryID: s.selectedCategoryID,
		Sentence:           s.composer.Words(),
	}
	if s.data == nil {
		return snap
	}
	snap.Ready = true
	snap.Settings = s.data.Settings
	snap.Categories = models.SortCategories(s.data.Categories)
	snap.VisibleCards = s.data.VisibleCards(s.selectedCategoryID)
	return snap
}

// Card looks up a catalog card by id.
func (s *Session) Card(id string) (models.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return models.Card{}, false
	}
	return s.data.FindCard(id)
}

// Cards returns every card in the catalog, whatever the active filter.
func (s *Session) Cards() []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil
	}
	out := make([]models.Card, len(s.data.Cards))
	copy(out, s.data.Cards)
	return out
}

// Category looks up a category by id.
func (s *Session) Category(id string) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return models.Category{}, false
	}
	return s.data.FindCategory(id)
}

// Categories returns every category sorted by order key.
func (s *Session) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil
	}
	return models.SortCategories(s.data.Categories)
}

// SelectCard appends the card's phrase-word snapshot to the sentence —
// always, independent of the active filter — and dispatches the audible
// feedback. A playback failure is returned but the appended word stands;
// audio trouble never rolls back session state.
func (s *Session) SelectCard(ctx context.Context, cardID string) (speech.Directive, error) {
	s.mu.Lock()
	if s.data == nil {
		s.mu.Unlock()
		return speech.Directive{}, ErrNotReady
	}
	card, ok := s.data.FindCard(cardID)
	if !ok {
		s.mu.Unlock()
		return speech.Directive{}, ErrCardNotFound
	}
	s.composer.Append(card.Snapshot())
	useTTS := s.data.Settings.UseTTS
	s.mu.Unlock()

	return s.dispatcher.PlayCard(ctx, card, useTTS)
}

// RemoveLastWord pops the last word of the sentence. No-op when empty.
func (s *Session) RemoveLastWord() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer.RemoveLast()
}

// ClearSentence empties the sentence buffer.
func (s *Session) ClearSentence() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer.Clear()
}

// Sentence returns the buffered words in order.
func (s *Session) Sentence() []models.PhraseWord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer.Words()
}

// SpeakSentence requests synthesis of the joined utterance. An empty buffer
// issues no request and reports ok=false.
func (s *Session) SpeakSentence(ctx context.Context) (speech.Directive, bool, error) {
	s.mu.Lock()
	text := s.composer.Utterance()
	s.mu.Unlock()
	return s.dispatcher.SpeakText(ctx, text)
}

// SetSelectedCategoryID changes the active filter. The id is not validated:
// selecting a nonexistent category yields an empty visible set plus the
// core cards.
func (s *Session) SetSelectedCategoryID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategoryID = id
}

// SelectedCategoryID returns the active filter.
func (s *Session) SelectedCategoryID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategoryID
}

// UpsertCard writes the card through the repository and adopts the returned
// aggregate. On a failed write the in-memory base stays put, so a retry
// operates on the last known-good aggregate.
func (s *Session) UpsertCard(ctx context.Context, card models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return ErrNotReady
	}
	next, err := s.repo.UpsertCard(ctx, *s.data, card)
	if err != nil {
		return err
	}
	s.data = &next
	return nil
}

// RemoveCard deletes a card from the catalog. Phrase words already buffered
// survive — they are denormalized copies.
func (s *Session) RemoveCard(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return ErrNotReady
	}
	next, err := s.repo.DeleteCard(ctx, *s.data, id)
	if err != nil {
		return err
	}
	s.data = &next
	return nil
}

// UpsertCategory writes the category through the repository.
func (s *Session) UpsertCategory(ctx context.Context, category models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return ErrNotReady
	}
	next, err := s.repo.UpsertCategory(ctx, *s.data, category)
	if err != nil {
		return err
	}
	s.data = &next
	return nil
}

// RemoveCategory deletes the category and cascades to its cards. When the
// deleted category was the active filter, the filter falls back to core.
func (s *Session) RemoveCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return ErrNotReady
	}
	next, err := s.repo.DeleteCategory(ctx, *s.data, id)
	if err != nil {
		return err
	}
	s.data = &next
	if s.selectedCategoryID == id {
		s.selectedCategoryID = models.CoreCategoryID
	}
	return nil
}

// UpdateSettings replaces the caregiver settings wholesale.
func (s *Session) UpdateSettings(ctx context.Context, settings models.SettingsState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return ErrNotReady
	}
	next, err := s.repo.SaveSettings(ctx, *s.data, settings)
	if err != nil {
		return err
	}
	s.data = &next
	return nil
}

// StartRecording begins an audio capture through the attached recorder.
func (s *Session) StartRecording(ctx context.Context) error {
	return s.capture.Start(ctx)
}

// StopRecording finalizes the capture and returns the clip URI.
func (s *Session) StopRecording(ctx context.Context) (string, error) {
	return s.capture.Stop(ctx)
}

// Close releases any in-flight recording. Safe to call on every shutdown
// path.
func (s *Session) Close() {
	s.capture.Release()
}
