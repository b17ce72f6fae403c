// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is a selectable symbol on the board. Visual identity comes from
// either an uploaded image or a built-in icon name; neither is required.
// CategoryID is not checked against existing categories — a card whose
// category was deleted (or never created) is legal and simply only shows
// up when it is core.
type Card struct {
	ID         string `json:"id"`
	LabelAr    string `json:"labelAr"`
	LabelEn    string `json:"labelEn,omitempty"`
	CategoryID string `json:"categoryId"`
	ImageURI   string `json:"imageUri,omitempty"`
	IconName   string `json:"iconName,omitempty"`
	Color      string `json:"color,omitempty"`
	IsCore     bool   `json:"isCore,omitempty"`
	AudioURI   string `json:"audioUri,omitempty"`

	// Unix-millisecond timestamps. CreatedAt is set once at creation and
	// never changed; UpdatedAt is refreshed on every mutation.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// VisibleUnder reports whether the card shows up under the given category
// filter. Core cards cross-cut categories and are visible under every filter.
func (c Card) VisibleUnder(categoryID string) bool {
	return c.IsCore || c.CategoryID == categoryID
}

// DisplayLabel returns the card label for the given settings.
func (c Card) DisplayLabel(s SettingsState) string {
	if s.ShowEnglish && c.LabelEn != "" {
		return c.LabelEn
	}
	return c.LabelAr
}

// Snapshot copies the card's labels into a PhraseWord. The sentence buffer
// holds these denormalized copies so that editing or deleting the source
// card never alters an in-progress sentence.
func (c Card) Snapshot() PhraseWord {
	return PhraseWord{
		CardID:  c.ID,
		LabelAr: c.LabelAr,
		LabelEn: c.LabelEn,
	}
}

// PhraseWord is one word of the sentence buffer. Ephemeral — never persisted.
type PhraseWord struct {
	CardID  string `json:"cardId"`
	LabelAr string `json:"labelAr"`
	LabelEn string `json:"labelEn,omitempty"`
}

// NewID returns a collision-resistant unique id for new cards and categories.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current time as unix milliseconds, the timestamp format
// stored in the aggregate blob.
func Now() int64 {
	return time.Now().UnixMilli()
}
