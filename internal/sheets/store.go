package sheets

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bigappetite/foodcost-api/internal/common"
)

// Tab names of the mock spreadsheet.
const (
	TabIngredients = "Ingredients"
	TabMenuItems   = "MenuItems"
	TabMenuSummary = "MenuSummary"
)

// SummaryHeader is the contractual header row of the MenuSummary tab.
var SummaryHeader = []string{
	"Menu Item Name",
	"Total Food Cost (£)",
	"Selling Price (£)",
	"GP £",
	"GP %",
}

// Store is an in-memory stand-in for a spreadsheet backend: named tabs of
// string cells behind a mutex. Calculation passes are synchronous but the
// HTTP edge is not, so reads hand out copies.
type Store struct {
	mu   sync.RWMutex
	id   string
	tabs map[string][][]string
}

// NewStore returns an empty, uninitialised store.
func NewStore() *Store {
	return &Store{tabs: make(map[string][][]string)}
}

// Initialize assigns the spreadsheet id on first call and (re)seeds the
// Ingredients and MenuItems tabs with the sample data. The id is kept for
// the life of the store so repeated initialisations stay addressable.
func (s *Store) Initialize() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id == "" {
		s.id = "mock-spreadsheet-" + uuid.NewString()
	}
	s.tabs[TabIngredients] = cloneRows(seedIngredients)
	s.tabs[TabMenuItems] = cloneRows(seedMenuItems)
	s.tabs[TabMenuSummary] = [][]string{append([]string(nil), SummaryHeader...)}
	return s.id
}

// ID returns the spreadsheet id, empty until Initialize has run.
func (s *Store) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// URL renders the mock public spreadsheet URL.
func (s *Store) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", s.id)
}

// ReadTab returns a copy of the named tab's rows. Unknown tabs read empty.
func (s *Store) ReadTab(name string) [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRows(s.tabs[name])
}

// WriteTab replaces the named tab's contents.
func (s *Store) WriteTab(name string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name] = cloneRows(rows)
}

// AppendRows adds rows to the end of the named tab, creating it if absent.
func (s *Store) AppendRows(name string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[name] = append(s.tabs[name], cloneRows(rows)...)
}

// UpdateSellingPrice sets the selling price cell on the first row of the
// named menu item's group in the MenuItems tab. Matching is case-insensitive
// on the item name; a miss returns NOT_FOUND.
func (s *Store) UpdateSellingPrice(menuItem string, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.tabs[TabMenuItems]
	matched := false
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row[0]), strings.TrimSpace(menuItem)) {
			continue
		}
		if !matched {
			row[5] = fmt.Sprintf("%.2f", price)
			matched = true
		} else {
			row[5] = ""
		}
	}
	if !matched {
		return common.NewAppError(common.CodeNotFound,
			fmt.Sprintf("menu item %q not found", menuItem), http.StatusNotFound, nil)
	}
	return nil
}

func cloneRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
