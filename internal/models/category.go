// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "sort"

// CoreCategoryID is the built-in category every board starts on. Cards may
// reference it even when no persisted Category row exists for it.
const CoreCategoryID = "core"

// Category groups cards on the board. Arabic is the primary language;
// the English name is optional display metadata.
type Category struct {
	ID     string `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn,omitempty"`
	Order  int    `json:"order"`
}

// DisplayName returns the category name for the given settings: English when
// it is shown and available, Arabic otherwise.
func (c Category) DisplayName(s SettingsState) string {
	if s.ShowEnglish && c.NameEn != "" {
		return c.NameEn
	}
	return c.NameAr
}

// SortCategories returns a copy ordered by the Order sort key. The sort is
// stable so categories with equal Order keep their insertion order.
func SortCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
