// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the AAC board data model: the category/card catalog,
// caregiver settings, and the AppData aggregate that is persisted as one unit.
package models

// AppData is the aggregate root. The whole aggregate is serialized and
// persisted as a single blob; there is no per-entity persistence. Mutations
// always build a new AppData value — the stored blob and the in-memory
// session reference are swapped atomically, last writer wins.
type AppData struct {
	Categories []Category    `json:"categories"`
	Cards      []Card        `json:"cards"`
	Settings   SettingsState `json:"settings"`
}

// Clone returns a deep copy. Slices are copied so callers can never reach
// through a snapshot and mutate the session's live aggregate.
func (d AppData) Clone() AppData {
	out := AppData{
		Categories: make([]Category, len(d.Categories)),
		Cards:      make([]Card, len(d.Cards)),
		Settings:   d.Settings,
	}
	copy(out.Categories, d.Categories)
	copy(out.Cards, d.Cards)
	return out
}

// FindCard returns the card with the given id, or false when absent.
func (d AppData) FindCard(id string) (Card, bool) {
	for _, c := range d.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// FindCategory returns the category with the given id, or false when absent.
func (d AppData) FindCategory(id string) (Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// VisibleCards returns the cards shown under the given category filter:
// cards in the category plus every core card, in catalog order.
func (d AppData) VisibleCards(categoryID string) []Card {
	var out []Card
	for _, c := range d.Cards {
		if c.VisibleUnder(categoryID) {
			out = append(out, c)
		}
	}
	return out
}
