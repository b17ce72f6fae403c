// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Theme is the board color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language is the caregiver interface language.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// SettingsState holds the caregiver preferences. One instance per
// installation; replaced wholesale, no history kept.
type SettingsState struct {
	ShowEnglish  bool     `json:"showEnglish"`
	UseTTS       bool     `json:"useTTS"`
	LargeButtons bool     `json:"largeButtons"`
	Theme        Theme    `json:"theme"`
	Language     Language `json:"language"`
}

// DefaultSettings are the preferences applied on first launch.
func DefaultSettings() SettingsState {
	return SettingsState{
		ShowEnglish:  true,
		UseTTS:       true,
		LargeButtons: false,
		Theme:        ThemeLight,
		Language:     LanguageArabic,
	}
}

// ValidTheme reports whether t is a known theme.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// ValidLanguage reports whether l is a known interface language.
func ValidLanguage(l Language) bool {
	return l == LanguageArabic || l == LanguageEnglish
}
