package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bigappetite/foodcost-api/internal/catalog"
	"github.com/bigappetite/foodcost-api/internal/common"
	"github.com/bigappetite/foodcost-api/internal/money"
	"github.com/bigappetite/foodcost-api/internal/obs"
	"github.com/bigappetite/foodcost-api/internal/rollup"
	"github.com/bigappetite/foodcost-api/internal/sheets"
)

// Service derives the GP summary from the spreadsheet store and caches the
// result in Redis keyed by spreadsheet id.
type Service struct {
	Store *sheets.Store
	R     *redis.Client
	TTL   time.Duration
}

func (s *Service) cacheKey() string {
	return "summary:" + s.Store.ID()
}

// Summary returns the menu GP summary, from cache when fresh.
func (s *Service) Summary(ctx context.Context) ([]rollup.SummaryRow, error) {
	if s == nil || s.Store == nil {
		return nil, fmt.Errorf("summary service not configured")
	}
	if rows, ok := s.fromCache(ctx); ok {
		cacheResult("hit")
		return rows, nil
	}
	cacheResult("miss")
	return s.Recalculate(ctx)
}

// Recalculate reads the Ingredients and MenuItems tabs, derives the summary,
// rewrites the MenuSummary tab and refreshes the cache.
func (s *Service) Recalculate(ctx context.Context) ([]rollup.SummaryRow, error) {
	if s == nil || s.Store == nil {
		return nil, fmt.Errorf("summary service not configured")
	}
	cat := s.Catalog()
	rows := s.recipeRows()
	out := rollup.Summarize(rows, cat)
	if obs.CalculationsTotal != nil {
		obs.CalculationsTotal.WithLabelValues("sheet").Inc()
	}

	sheet := make([][]string, 0, len(out))
	for _, row := range out {
		sheet = append(sheet, []string{
			row.MenuItem,
			fmt.Sprintf("%.2f", row.Cost),
			fmt.Sprintf("%.2f", row.Price),
			fmt.Sprintf("%.2f", row.GPPounds),
			fmt.Sprintf("%.1f", row.GPPercent),
		})
	}
	s.Store.WriteTab(sheets.TabMenuSummary, [][]string{append([]string(nil), sheets.SummaryHeader...)})
	s.Store.AppendRows(sheets.TabMenuSummary, sheet)
	s.store(ctx, out)
	return out, nil
}

// Invalidate drops the cached summary. Called after any import or reseed.
func (s *Service) Invalidate(ctx context.Context) {
	if s == nil || s.R == nil {
		return
	}
	s.R.Del(ctx, s.cacheKey())
}

// Catalog builds the ingredient catalog from the Ingredients tab.
func (s *Service) Catalog() *catalog.Catalog {
	cat := catalog.New()
	for i, row := range s.Store.ReadTab(sheets.TabIngredients) {
		if i == 0 || len(row) < 5 {
			continue
		}
		cat.Add(catalog.Ingredient{
			Name:        row[0],
			Unit:        row[1],
			UnitCost:    money.ParseAmount(row[2]),
			PackSize:    money.ParseAmount(row[3]),
			CostPerUnit: money.ParseAmount(row[4]),
			Supplier:    cell(row, 5),
			Category:    cell(row, 6),
		})
	}
	return cat
}

func (s *Service) recipeRows() []rollup.Row {
	tab := s.Store.ReadTab(sheets.TabMenuItems)
	rows := make([]rollup.Row, 0, len(tab))
	for i, row := range tab {
		if i == 0 || len(row) < 4 {
			continue
		}
		rows = append(rows, rollup.Row{
			MenuItemName:   row[0],
			IngredientName: row[1],
			Quantity:       money.ParseAmount(row[2]),
			Unit:           row[3],
			SellingPrice:   money.ParseAmount(cell(row, 5)),
		})
	}
	return rows
}

func (s *Service) fromCache(ctx context.Context) ([]rollup.SummaryRow, bool) {
	if s.R == nil || s.TTL <= 0 {
		return nil, false
	}
	data, err := s.R.Get(ctx, s.cacheKey()).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []rollup.SummaryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (s *Service) store(ctx context.Context, rows []rollup.SummaryRow) {
	if s.R == nil || s.TTL <= 0 {
		return
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	s.R.Set(ctx, s.cacheKey(), data, s.TTL)
}

func cacheResult(result string) {
	if obs.SummaryCacheTotal != nil {
		obs.SummaryCacheTotal.WithLabelValues(result).Inc()
	}
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

var underThreshold = regexp.MustCompile(`under\s*(\d+(?:\.\d+)?)`)

// Query answers simple free-text questions over the current data:
// "<ingredient> cost" returns the unit cost, "<item> gp" returns the GP
// figures, "items under N" filters the summary by GP%.
func (s *Service) Query(ctx context.Context, q string) (any, error) {
	qLow := strings.ToLower(strings.TrimSpace(q))
	if qLow == "" {
		return nil, common.ValidationError("query text is required")
	}

	if strings.Contains(qLow, "cost") || strings.Contains(qLow, "price") {
		for _, ing := range s.Catalog().Items() {
			if strings.Contains(qLow, strings.ToLower(ing.Name)) {
				return map[string]any{
					"ingredient": ing.Name,
					"unitCost":   ing.CostPerUnit,
					"unit":       ing.Unit,
				}, nil
			}
		}
	}

	if strings.Contains(qLow, "gp") || strings.Contains(qLow, "margin") {
		rows, err := s.Summary(ctx)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if strings.Contains(qLow, strings.ToLower(row.MenuItem)) {
				return row, nil
			}
		}
	}

	if m := underThreshold.FindStringSubmatch(qLow); m != nil {
		rows, err := s.Summary(ctx)
		if err != nil {
			return nil, err
		}
		threshold := money.ParseAmount(m[1])
		under := make([]rollup.SummaryRow, 0, len(rows))
		for _, row := range rows {
			if row.GPPercent < threshold {
				under = append(under, row)
			}
		}
		return under, nil
	}

	return map[string]string{
		"message": "Query not recognised. Try: 'cheese cost', 'wagyu cheese smash gp', or 'items under 70'",
	}, nil
}
