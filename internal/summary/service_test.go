package summary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bigappetite/foodcost-api/internal/importer"
	"github.com/bigappetite/foodcost-api/internal/rollup"
	"github.com/bigappetite/foodcost-api/internal/sheets"
	"github.com/bigappetite/foodcost-api/internal/summary"
)

func newService(t *testing.T, withRedis bool) (*summary.Service, *miniredis.Miniredis) {
	t.Helper()
	store := sheets.NewStore()
	store.Initialize()
	svc := &summary.Service{Store: store, TTL: time.Minute}
	var mr *miniredis.Miniredis
	if withRedis {
		mr = miniredis.RunT(t)
		svc.R = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	}
	return svc, mr
}

func findRow(t *testing.T, rows []rollup.SummaryRow, name string) rollup.SummaryRow {
	t.Helper()
	for _, row := range rows {
		if row.MenuItem == name {
			return row
		}
	}
	t.Fatalf("row %q not found in %v", name, rows)
	return rollup.SummaryRow{}
}

func TestRecalculateSeededData(t *testing.T) {
	svc, _ := newService(t, false)
	rows, err := svc.Recalculate(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	wagyu := findRow(t, rows, "Wagyu Cheese Smash")
	require.InDelta(t, 1.03, wagyu.Cost, 1e-9)
	require.InDelta(t, 11.50, wagyu.Price, 1e-9)
	require.InDelta(t, 10.47, wagyu.GPPounds, 1e-9)
	require.InDelta(t, 91.0, wagyu.GPPercent, 1e-9)

	fries := findRow(t, rows, "Fries")
	require.InDelta(t, 2.00, fries.Cost, 1e-9)
	require.InDelta(t, 3.00, fries.Price, 1e-9)
	require.InDelta(t, 1.00, fries.GPPounds, 1e-9)
	require.InDelta(t, 33.3, fries.GPPercent, 1e-9)

	sheet := svc.Store.ReadTab(sheets.TabMenuSummary)
	require.Len(t, sheet, len(rows)+1)
	require.Equal(t, sheets.SummaryHeader, sheet[0])
	require.Equal(t, "1.03", sheet[1][1])
	require.Equal(t, "91.0", sheet[1][4])
}

func TestSummaryCaching(t *testing.T) {
	svc, mr := newService(t, true)
	ctx := context.Background()

	first, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, first, 4)
	require.True(t, mr.Exists("summary:"+svc.Store.ID()))

	// A stale cache keeps serving until invalidated.
	svc.Store.WriteTab(sheets.TabMenuItems, svc.Store.ReadTab(sheets.TabMenuItems)[:2])
	cached, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 4)

	svc.Invalidate(ctx)
	fresh, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
}

func TestQuery(t *testing.T) {
	svc, _ := newService(t, false)
	ctx := context.Background()

	res, err := svc.Query(ctx, "cucumber cost")
	require.NoError(t, err)
	m, ok := res.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Cucumber", m["ingredient"])
	require.InDelta(t, 0.68, m["unitCost"].(float64), 1e-9)

	res, err = svc.Query(ctx, "wagyu cheese smash gp")
	require.NoError(t, err)
	row, ok := res.(rollup.SummaryRow)
	require.True(t, ok)
	require.InDelta(t, 10.47, row.GPPounds, 1e-9)

	res, err = svc.Query(ctx, "items under 50")
	require.NoError(t, err)
	under, ok := res.([]rollup.SummaryRow)
	require.True(t, ok)
	require.Len(t, under, 1)
	require.Equal(t, "Fries", under[0].MenuItem)

	res, err = svc.Query(ctx, "what is for dinner")
	require.NoError(t, err)
	hint, ok := res.(map[string]string)
	require.True(t, ok)
	require.Contains(t, hint["message"], "not recognised")

	_, err = svc.Query(ctx, "  ")
	require.Error(t, err)
}

func TestExportRoundTrip(t *testing.T) {
	svc, _ := newService(t, false)
	ctx := context.Background()

	rows, err := svc.Recalculate(ctx)
	require.NoError(t, err)

	csv, err := svc.ExportCSV(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(csv, "Menu Item, Selling Price, Food Cost, Gross Profit, GP %, Ingredients\n"))
	require.Contains(t, csv, "Potato Bun: £0.56")

	prices, err := importer.MenuPrices(csv)
	require.NoError(t, err)
	require.Len(t, prices, len(rows))
	for i, p := range prices {
		require.Equal(t, rows[i].MenuItem, p.MenuItem)
		require.InDelta(t, rows[i].Price, p.SellingPrice, 0.005)
	}
}

func TestExportEscapesQuotedNames(t *testing.T) {
	svc, _ := newService(t, false)

	svc.Store.WriteTab(sheets.TabMenuItems, [][]string{
		{"Menu Item Name", "Ingredient Name", "Qty Used", "Unit", "Auto Cost (£)", "Selling Price (£)"},
		{`Say "Cheese" Smash`, "Potato Bun", "1", "each", "", "8.00"},
	})

	csv, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Contains(t, csv, `"Say ""Cheese"" Smash",8.00`)
}

func TestExportReimportKeepsSummary(t *testing.T) {
	svc, _ := newService(t, false)
	ctx := context.Background()

	before, err := svc.Recalculate(ctx)
	require.NoError(t, err)
	recipes := svc.Store.ReadTab(sheets.TabMenuItems)

	csv, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	h := importer.Handler{Store: svc.Store, Summaries: svc, DefaultUnit: importer.DefaultUnit, Log: zerolog.Nop()}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(csv))
	rec := httptest.NewRecorder()
	h.Upload(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"kind":"menu_prices"`)

	require.Equal(t, recipes, svc.Store.ReadTab(sheets.TabMenuItems))

	after, err := svc.Recalculate(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
