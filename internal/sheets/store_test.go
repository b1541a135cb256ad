package sheets

import (
	"strings"
	"testing"
)

func TestInitializeSeedsTabsAndKeepsID(t *testing.T) {
	s := NewStore()
	if s.ID() != "" {
		t.Fatalf("expected empty id before initialise, got %q", s.ID())
	}

	id := s.Initialize()
	if !strings.HasPrefix(id, "mock-spreadsheet-") {
		t.Fatalf("unexpected id %q", id)
	}
	if again := s.Initialize(); again != id {
		t.Fatalf("id changed across initialisations: %q vs %q", id, again)
	}
	if !strings.Contains(s.URL(), id) {
		t.Fatalf("url %q does not embed the id", s.URL())
	}

	ing := s.ReadTab(TabIngredients)
	if len(ing) != 15 {
		t.Fatalf("expected 15 ingredient rows including header, got %d", len(ing))
	}
	items := s.ReadTab(TabMenuItems)
	if len(items) != 15 {
		t.Fatalf("expected 15 menu item rows including header, got %d", len(items))
	}
	summary := s.ReadTab(TabMenuSummary)
	if len(summary) != 1 || summary[0][0] != "Menu Item Name" {
		t.Fatalf("summary tab not reset to header: %v", summary)
	}
}

func TestReadTabReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Initialize()
	rows := s.ReadTab(TabIngredients)
	rows[1][0] = "mutated"
	if s.ReadTab(TabIngredients)[1][0] == "mutated" {
		t.Fatal("ReadTab leaked internal state")
	}
}

func TestInitializeReseedsAfterWrite(t *testing.T) {
	s := NewStore()
	s.Initialize()
	s.WriteTab(TabIngredients, [][]string{{"only header"}})
	s.Initialize()
	if got := len(s.ReadTab(TabIngredients)); got != 15 {
		t.Fatalf("expected reseeded tab, got %d rows", got)
	}
}

func TestAppendRows(t *testing.T) {
	s := NewStore()
	s.Initialize()
	s.AppendRows(TabMenuItems, [][]string{
		{"Extra Item", "Potato Bun", "1", "each", "", "5.00"},
	})
	rows := s.ReadTab(TabMenuItems)
	last := rows[len(rows)-1]
	if last[0] != "Extra Item" {
		t.Fatalf("append missing: %v", last)
	}
}

func TestUpdateSellingPrice(t *testing.T) {
	s := NewStore()
	s.Initialize()
	if err := s.UpdateSellingPrice("fries", 3.50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := s.ReadTab(TabMenuItems)
	found := false
	for _, row := range rows[1:] {
		if row[0] == "Fries" {
			if row[5] != "3.50" {
				t.Fatalf("price not updated: %q", row[5])
			}
			found = true
		}
	}
	if !found {
		t.Fatal("Fries row missing")
	}
	if err := s.UpdateSellingPrice("No Such Item", 1); err == nil {
		t.Fatal("expected NOT_FOUND error")
	}
}
