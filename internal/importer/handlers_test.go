package importer_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bigappetite/foodcost-api/internal/importer"
	"github.com/bigappetite/foodcost-api/internal/sheets"
)

type spyInvalidator struct{ calls int }

func (s *spyInvalidator) Invalidate(context.Context) { s.calls++ }

func newHandler() (*importer.Handler, *sheets.Store, *spyInvalidator) {
	store := sheets.NewStore()
	store.Initialize()
	spy := &spyInvalidator{}
	h := &importer.Handler{
		Store:     store,
		Summaries: spy,
		Log:       zerolog.Nop(),
	}
	return h, store, spy
}

func TestUploadIngredientsRaw(t *testing.T) {
	h, store, spy := newHandler()
	body := "Name,Purchase Price,Quantity,Unit\nFlour,2.50,5,kg\nSugar,1.80,2,kg\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"kind":"ingredients"`)
	require.Contains(t, rr.Body.String(), `"records":2`)
	require.Equal(t, 1, spy.calls)

	tab := store.ReadTab(sheets.TabIngredients)
	require.Len(t, tab, 3)
	require.Equal(t, "Flour", tab[1][0])
	require.Equal(t, "0.5", tab[1][4])
}

func TestUploadMultipartRecipes(t *testing.T) {
	h, store, _ := newHandler()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "recipes.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Menu Item,Ingredient,Qty Used,Unit,Selling Price\nBurger,Bun,1,each,9.00\nBurger,Patty,2,each,\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"kind":"recipes"`)

	tab := store.ReadTab(sheets.TabMenuItems)
	require.Len(t, tab, 3)
	require.Equal(t, []string{"Burger", "Bun", "1", "each", "", "9.00"}, tab[1])
	require.Equal(t, "", tab[2][5])
}

func TestUploadMenuItemsFlattened(t *testing.T) {
	h, store, _ := newHandler()
	body := "Name,Selling Price,Ingredient 1,Qty 1,Ingredient 2,Qty 2\n" +
		"Smash Burger,12.00,Beef Patty (g),150,Brioche Bun,1\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	tab := store.ReadTab(sheets.TabMenuItems)
	require.Len(t, tab, 3)
	// selling price only on the group's first row
	require.Equal(t, "12.00", tab[1][5])
	require.Equal(t, "", tab[2][5])
	require.Equal(t, "g", tab[1][3])
	require.Equal(t, importer.DefaultUnit, tab[2][3])
}

func TestUploadMenuPrices(t *testing.T) {
	h, store, _ := newHandler()
	body := "Menu Item,Selling Price (£)\nFries,3.50\nNo Such Item,9.99\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"records":1`)

	for _, row := range store.ReadTab(sheets.TabMenuItems)[1:] {
		if row[0] == "Fries" {
			require.Equal(t, "3.50", row[5])
		}
	}
}

func TestUploadValidationFailureCommitsNothing(t *testing.T) {
	h, store, spy := newHandler()
	before := store.ReadTab(sheets.TabMenuItems)

	// selling price column missing: scenario yields an error, not partial data
	body := "Name,Price,Ingredient 1,Qty 1\nBurger,9.00,Bun,1\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "VALIDATION")
	require.Equal(t, before, store.ReadTab(sheets.TabMenuItems))
	require.Zero(t, spy.calls)

	// detected kind but header-only input is also a validation failure
	req = httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader("Name,Selling Price,Ingredient 1,Qty 1\n"))
	rr = httptest.NewRecorder()
	h.Upload(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, before, store.ReadTab(sheets.TabMenuItems))
	require.Zero(t, spy.calls)
}

func TestUploadUnknownKind(t *testing.T) {
	h, _, _ := newHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader("Colour,Shape\nred,round\n"))
	rr := httptest.NewRecorder()
	h.Upload(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
