package handlers

import (
	"strings"
	"unicode/utf8"

	"nutq/internal/models"
)

// Validation limits for card and category fields.
const (
	maxLabelLen = 100
	maxNameLen  = 100
	maxURILen   = 2_048
	maxIconLen  = 64
	maxColorLen = 32
)

// validateCard checks card inputs and returns the first error found.
// The Arabic label is the one required field; everything else is optional
// display metadata.
func validateCard(card models.Card) string {
	if strings.TrimSpace(card.LabelAr) == "" {
		return "Arabic label is required."
	}
	if utf8.RuneCountInString(card.LabelAr) > maxLabelLen {
		return "Arabic label is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(card.LabelEn) > maxLabelLen {
		return "English label is too long (max 100 characters)."
	}
	if len(card.ImageURI) > maxURILen {
		return "Image URI is too long (max 2,048 characters)."
	}
	if len(card.AudioURI) > maxURILen {
		return "Audio URI is too long (max 2,048 characters)."
	}
	if len(card.IconName) > maxIconLen {
		return "Icon name is too long (max 64 characters)."
	}
	if len(card.Color) > maxColorLen {
		return "Color is too long (max 32 characters)."
	}
	return ""
}

// validateCategory checks category inputs and returns the first error found.
func validateCategory(cat models.Category) string {
	if strings.TrimSpace(cat.NameAr) == "" {
		return "Arabic name is required."
	}
	if utf8.RuneCountInString(cat.NameAr) > maxNameLen {
		return "Arabic name is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(cat.NameEn) > maxNameLen {
		return "English name is too long (max 100 characters)."
	}
	return ""
}

// validateSettings checks the enum-valued settings fields.
func validateSettings(s models.SettingsState) string {
	if !models.ValidTheme(s.Theme) {
		return "Unknown theme."
	}
	if !models.ValidLanguage(s.Language) {
		return "Unknown language."
	}
	return ""
}
