// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "nutq/internal/models"

// Pure transforms over the aggregate. Each returns a new AppData value and
// never mutates its input; the repository persists the result before the
// session adopts it.

// upsertCard replaces the card with card.ID, or appends when absent.
// Timestamps are the caller's responsibility.
func upsertCard(data models.AppData, card models.Card) models.AppData {
	next := data.Clone()
	for i, c := range next.Cards {
		if c.ID == card.ID {
			next.Cards[i] = card
			return next
		}
	}
	next.Cards = append(next.Cards, card)
	return next
}

// deleteCard removes the card with the given id. No-op when absent.
func deleteCard(data models.AppData, id string) models.AppData {
	next := data.Clone()
	out := next.Cards[:0]
	for _, c := range next.Cards {
		if c.ID != id {
			out = append(out, c)
		}
	}
	next.Cards = out
	return next
}

// upsertCategory replaces the category with category.ID, or appends.
func upsertCategory(data models.AppData, category models.Category) models.AppData {
	next := data.Clone()
	for i, c := range next.Categories {
		if c.ID == category.ID {
			next.Categories[i] = category
			return next
		}
	}
	next.Categories = append(next.Categories, category)
	return next
}

// deleteCategory removes the category and cascades: every card whose
// CategoryID equals id goes with it. The cascade is deliberate and
// destructive — callers confirm with the user before invoking it.
func deleteCategory(data models.AppData, id string) models.AppData {
	next := data.Clone()

	cats := next.Categories[:0]
	for _, c := range next.Categories {
		if c.ID != id {
			cats = append(cats, c)
		}
	}
	next.Categories = cats

	cards := next.Cards[:0]
	for _, c := range next.Cards {
		if c.CategoryID != id {
			cards = append(cards, c)
		}
	}
	next.Cards = cards

	return next
}

// withSettings replaces the settings object wholesale.
func withSettings(data models.AppData, settings models.SettingsState) models.AppData {
	next := data.Clone()
	next.Settings = settings
	return next
}
