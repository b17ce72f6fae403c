package handlers

import (
	"net/http"
	"testing"

	"nutq/internal/models"
)

// TestCardCRUD walks a card through create, update, and delete.
func TestCardCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	var created models.Card
	w := doJSON(t, r, http.MethodPost, "/admin/cards", map[string]any{
		"labelAr":    "عصير",
		"labelEn":    "Juice",
		"categoryId": "food",
	}, &created)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	if created.ID == "" {
		t.Fatal("create: no id assigned")
	}
	if created.CreatedAt == 0 || created.UpdatedAt == 0 {
		t.Errorf("create: timestamps not stamped: %+v", created)
	}

	var updated models.Card
	w = doJSON(t, r, http.MethodPut, "/admin/cards/"+created.ID, map[string]any{
		"labelAr":    "عصير",
		"labelEn":    "Orange juice",
		"categoryId": "food",
	}, &updated)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", w.Code, w.Body.String())
	}
	if updated.LabelEn != "Orange juice" {
		t.Errorf("update: labelEn = %q", updated.LabelEn)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("update changed CreatedAt: %d -> %d", created.CreatedAt, updated.CreatedAt)
	}

	if w := doJSON(t, r, http.MethodDelete, "/admin/cards/"+created.ID, nil, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", w.Code)
	}

	var list struct {
		Cards []models.Card `json:"cards"`
	}
	doJSON(t, r, http.MethodGet, "/admin/cards", nil, &list)
	for _, c := range list.Cards {
		if c.ID == created.ID {
			t.Error("card still listed after delete")
		}
	}
}

// TestCardValidation verifies the required Arabic label.
func TestCardValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/cards", map[string]any{
		"labelEn":    "Water",
		"categoryId": "food",
	}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

// TestUpdateCard_Unknown verifies a 404 for an id not in the catalog.
func TestUpdateCard_Unknown(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/admin/cards/no-such-card", map[string]any{
		"labelAr": "ماء",
	}, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

// TestCategoryCRUD walks a category through create, update, and delete,
// and checks the cascade to its cards.
func TestCategoryCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	var created models.Category
	w := doJSON(t, r, http.MethodPost, "/admin/categories", map[string]any{
		"nameAr": "مدرسة",
		"nameEn": "School",
		"order":  9,
	}, &created)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	if created.ID == "" {
		t.Fatal("create: no id assigned")
	}

	var card models.Card
	doJSON(t, r, http.MethodPost, "/admin/cards", map[string]any{
		"labelAr":    "قلم",
		"categoryId": created.ID,
	}, &card)

	w = doJSON(t, r, http.MethodPut, "/admin/categories/"+created.ID, map[string]any{
		"nameAr": "المدرسة",
		"order":  9,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, http.MethodDelete, "/admin/categories/"+created.ID, nil, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", w.Code)
	}

	// The category's card goes with it.
	var list struct {
		Cards []models.Card `json:"cards"`
	}
	doJSON(t, r, http.MethodGet, "/admin/cards", nil, &list)
	for _, c := range list.Cards {
		if c.ID == card.ID {
			t.Error("card survived its category's deletion")
		}
	}
}

// TestCategoryValidation verifies the required Arabic name.
func TestCategoryValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/categories", map[string]any{
		"nameEn": "School",
	}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

// TestUpdateSettings covers the valid and invalid-enum paths.
func TestUpdateSettings(t *testing.T) {
	r, _ := newTestRouter(t)

	var saved models.SettingsState
	w := doJSON(t, r, http.MethodPut, "/admin/settings", map[string]any{
		"showEnglish":  false,
		"useTTS":       false,
		"largeButtons": true,
		"theme":        "dark",
		"language":     "ar",
	}, &saved)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if saved.Theme != models.ThemeDark || !saved.LargeButtons {
		t.Errorf("saved settings = %+v", saved)
	}

	w = doJSON(t, r, http.MethodPut, "/admin/settings", map[string]any{
		"theme":    "sepia",
		"language": "ar",
	}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid theme: status = %d, want 422", w.Code)
	}
}

// TestRecordings_NoRecorder verifies the degraded responses when no
// capture device is attached.
func TestRecordings_NoRecorder(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/admin/recordings/start", nil, nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("start: status = %d, want 503", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/admin/recordings/stop", nil, nil); w.Code != http.StatusConflict {
		t.Errorf("stop: status = %d, want 409", w.Code)
	}
}

// TestMediaUpload_NoStorage verifies the upload endpoint degrades when
// object storage is not configured.
func TestMediaUpload_NoStorage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/media", nil, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
