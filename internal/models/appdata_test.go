package models

import "testing"

func sampleData() AppData {
	return AppData{
		Categories: []Category{
			{ID: "food", NameAr: "طعام", Order: 1},
			{ID: "drinks", NameAr: "مشروبات", Order: 2},
		},
		Cards: []Card{
			{ID: "c1", LabelAr: "خبز", CategoryID: "food"},
			{ID: "c2", LabelAr: "ماء", CategoryID: "drinks"},
			{ID: "c3", LabelAr: "أريد", CategoryID: "food", IsCore: true},
		},
		Settings: DefaultSettings(),
	}
}

// TestAppDataClone verifies a clone is independent of the original.
func TestAppDataClone(t *testing.T) {
	orig := sampleData()
	clone := orig.Clone()

	clone.Cards[0].LabelAr = "changed"
	clone.Categories[0].NameAr = "changed"

	if orig.Cards[0].LabelAr != "خبز" {
		t.Error("mutating clone cards changed the original")
	}
	if orig.Categories[0].NameAr != "طعام" {
		t.Error("mutating clone categories changed the original")
	}
}

// TestAppDataVisibleCards verifies the filter: category cards plus core
// cards, and an unknown filter yields only the core cards.
func TestAppDataVisibleCards(t *testing.T) {
	data := sampleData()

	got := data.VisibleCards("drinks")
	if len(got) != 2 {
		t.Fatalf("VisibleCards(drinks) returned %d cards, want 2", len(got))
	}
	if got[0].ID != "c2" || got[1].ID != "c3" {
		t.Errorf("VisibleCards(drinks) = %v %v, want c2 c3", got[0].ID, got[1].ID)
	}

	// Nonexistent filter is not an error — only core cards remain visible.
	got = data.VisibleCards("nope")
	if len(got) != 1 || got[0].ID != "c3" {
		t.Errorf("VisibleCards(nope) = %v, want just the core card", got)
	}
}

// TestSortCategoriesStable verifies ordering by sort key with insertion
// order preserved on ties.
func TestSortCategoriesStable(t *testing.T) {
	cats := []Category{
		{ID: "b", Order: 2},
		{ID: "a", Order: 1},
		{ID: "b2", Order: 2},
	}

	sorted := SortCategories(cats)

	wantOrder := []string{"a", "b", "b2"}
	for i, want := range wantOrder {
		if sorted[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, sorted[i].ID, want)
		}
	}

	// Input slice is untouched.
	if cats[0].ID != "b" {
		t.Error("SortCategories mutated its input")
	}
}
