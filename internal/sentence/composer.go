// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sentence holds the in-progress utterance: an ordered buffer of
// phrase words the user has tapped. Session-scoped and never persisted —
// created empty on start, cleared on explicit user action.
package sentence

import (
	"strings"

	"nutq/internal/models"
)

// Composer is the ordered sentence buffer. Not safe for concurrent use;
// the board session serializes access.
type Composer struct {
	words []models.PhraseWord
}

// New returns an empty composer.
func New() *Composer {
	return &Composer{}
}

// Append adds a word to the end of the buffer.
func (c *Composer) Append(w models.PhraseWord) {
	c.words = append(c.words, w)
}

// RemoveLast pops the last word. No-op on an empty buffer.
func (c *Composer) RemoveLast() {
	if len(c.words) == 0 {
		return
	}
	c.words = c.words[:len(c.words)-1]
}

// Clear empties the buffer.
func (c *Composer) Clear() {
	c.words = nil
}

// Words returns a copy of the buffer in order.
func (c *Composer) Words() []models.PhraseWord {
	out := make([]models.PhraseWord, len(c.words))
	copy(out, c.words)
	return out
}

// Len returns the number of buffered words.
func (c *Composer) Len() int {
	return len(c.words)
}

// Utterance renders the buffer to the flat string handed to the speech
// engine: Arabic labels joined by single spaces, "" when empty.
func (c *Composer) Utterance() string {
	if len(c.words) == 0 {
		return ""
	}
	parts := make([]string, len(c.words))
	for i, w := range c.words {
		parts[i] = w.LabelAr
	}
	return strings.Join(parts, " ")
}
