package handlers

import (
	"strings"
	"testing"

	"nutq/internal/models"
)

func TestValidateCard(t *testing.T) {
	tests := []struct {
		name    string
		card    models.Card
		wantErr bool
	}{
		{"valid minimal", models.Card{LabelAr: "ماء"}, false},
		{"valid full", models.Card{LabelAr: "ماء", LabelEn: "Water", CategoryID: "food", IconName: "cup-water", Color: "#42A5F5"}, false},
		{"missing arabic label", models.Card{LabelEn: "Water"}, true},
		{"whitespace arabic label", models.Card{LabelAr: "   "}, true},
		{"label too long", models.Card{LabelAr: strings.Repeat("م", maxLabelLen+1)}, true},
		{"uri too long", models.Card{LabelAr: "ماء", ImageURI: strings.Repeat("x", maxURILen+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateCard(tt.card)
			if (msg != "") != tt.wantErr {
				t.Errorf("validateCard() = %q, wantErr %v", msg, tt.wantErr)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	if msg := validateCategory(models.Category{NameAr: "طعام"}); msg != "" {
		t.Errorf("valid category rejected: %q", msg)
	}
	if msg := validateCategory(models.Category{NameEn: "Food"}); msg == "" {
		t.Error("missing Arabic name accepted")
	}
}

func TestValidateSettings(t *testing.T) {
	if msg := validateSettings(models.DefaultSettings()); msg != "" {
		t.Errorf("default settings rejected: %q", msg)
	}
	bad := models.DefaultSettings()
	bad.Theme = "sepia"
	if msg := validateSettings(bad); msg == "" {
		t.Error("unknown theme accepted")
	}
	bad = models.DefaultSettings()
	bad.Language = "fr"
	if msg := validateSettings(bad); msg == "" {
		t.Error("unknown language accepted")
	}
}
