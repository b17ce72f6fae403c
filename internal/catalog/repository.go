// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog owns the durable representation of the board: categories,
// cards, and caregiver settings, persisted as one aggregate blob. Every
// mutation builds a new aggregate, writes it to the store, and only then
// returns it — a subsequent Load can never observe a partial write.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"nutq/internal/kv"
	"nutq/internal/models"
)

// StorageKey is the single fixed key the whole aggregate blob lives under.
const StorageKey = "aac-app-data"

// Repository provides atomic read-modify-write operations over the aggregate.
type Repository struct {
	store kv.Store

	// now is swapped in tests to control timestamps.
	now func() int64
}

// NewRepository returns a repository persisting through the given store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store, now: models.Now}
}

// Load returns the persisted aggregate. On a pristine store it seeds,
// persists the seed (exactly one write), and returns it. A blob that exists
// but does not parse yields a *CorruptStoreError — the caller decides
// whether to Reseed; nothing is swallowed here.
func (r *Repository) Load(ctx context.Context) (models.AppData, error) {
	blob, err := r.store.Get(ctx, StorageKey)
	if err == kv.ErrNotFound {
		slog.Info("no stored catalog, seeding first-run data")
		return r.Reseed(ctx)
	}
	if err != nil {
		return models.AppData{}, fmt.Errorf("load catalog: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return models.AppData{}, &CorruptStoreError{Key: StorageKey, Err: err}
	}
	return data, nil
}

// Reseed builds the bundled first-run aggregate, persists it, and returns
// it. Also the explicit recovery path after a corrupt blob.
func (r *Repository) Reseed(ctx context.Context) (models.AppData, error) {
	data, err := seed(r.now())
	if err != nil {
		return models.AppData{}, err
	}
	if err := r.persist(ctx, data); err != nil {
		return models.AppData{}, err
	}
	slog.Info("catalog seeded",
		"categories", len(data.Categories),
		"cards", len(data.Cards),
	)
	return data, nil
}

// UpsertCard replaces the card with card.ID or appends it. UpdatedAt is
// always refreshed; CreatedAt is stamped only when unset, so edits preserve
// the original creation time. CategoryID is not validated — orphaned cards
// are legal and simply stop matching any visible filter.
func (r *Repository) UpsertCard(ctx context.Context, data models.AppData, card models.Card) (models.AppData, error) {
	card.UpdatedAt = r.now()
	if card.CreatedAt == 0 {
		card.CreatedAt = card.UpdatedAt
	}

	next := upsertCard(data, card)
	if err := r.persist(ctx, next); err != nil {
		return models.AppData{}, err
	}
	return next, nil
}

// DeleteCard removes the card with the given id. Deleting an absent id is a
// no-op, not an error. Phrase words already in the sentence buffer are
// denormalized copies and survive this.
func (r *Repository) DeleteCard(ctx context.Context, data models.AppData, id string) (models.AppData, error) {
	next := deleteCard(data, id)
	if err := r.persist(ctx, next); err != nil {
		return models.AppData{}, err
	}
	return next, nil
}

// UpsertCategory replaces the category with category.ID or appends it.
func (r *Repository) UpsertCategory(ctx context.Context, data models.AppData, category models.Category) (models.AppData, error) {
	next := upsertCategory(data, category)
	if err := r.persist(ctx, next); err != nil {
		return models.AppData{}, err
	}
	return next, nil
}

// DeleteCategory removes the category and every card referencing it. The
// cascade is destructive; callers confirm with the user first.
func (r *Repository) DeleteCategory(ctx context.Context, data models.AppData, id string) (models.AppData, error) {
	next := deleteCategory(data, id)
	if err := r.persist(ctx, next); err != nil {
		return models.AppData{}, err
	}
	return next, nil
}

// SaveSettings replaces the settings object wholesale.
func (r *Repository) SaveSettings(ctx context.Context, data models.AppData, settings models.SettingsState) (models.AppData, error) {
	next := withSettings(data, settings)
	if err := r.persist(ctx, next); err != nil {
		return models.AppData{}, err
	}
	return next, nil
}

// ClearAll removes the persisted blob entirely. The next Load re-seeds.
func (r *Repository) ClearAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	slog.Warn("catalog cleared, next load will re-seed")
	return nil
}

// persist serializes the aggregate and writes it under the fixed key.
func (r *Repository) persist(ctx context.Context, data models.AppData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, string(blob)); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}
