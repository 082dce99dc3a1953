package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vd437/quick-cash-control/models"
	"github.com/vd437/quick-cash-control/store"
)

func newSalesRouter(seed store.Seed) (*gin.Engine, *store.Memory) {
	gin.SetMode(gin.TestMode)
	m := store.NewMemory(seed)
	sc := NewSalesController(m)

	r := gin.New()
	r.POST("/sales", sc.Create)
	r.GET("/sales", sc.List)
	r.GET("/sales/range", sc.DateRange)
	r.GET("/sales/summary", sc.Summary)
	r.GET("/sales/top", sc.Top)
	r.GET("/sales/export", sc.ExportCSV)
	r.GET("/sales/:id", sc.Get)
	r.GET("/sales/:id/receipt", sc.Receipt)
	return r, m
}

func catalogSeed() store.Seed {
	return store.Seed{
		Products: []models.Product{
			{ID: 1, Name: "widget", Price: 5.00, Quantity: 10, LowStockAlert: 2},
		},
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutSuccess(t *testing.T) {
	r, m := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodPost, "/sales", `{"product_id":1,"quantity":3}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Sale models.Sale `json:"sale"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15.00, resp.Sale.TotalPrice)
	assert.Equal(t, "widget", resp.Sale.ProductName)

	p, err := m.FindProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Quantity)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	r, m := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodPost, "/sales", `{"product_id":1,"quantity":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The rejected request must not have touched the stock.
	p, err := m.FindProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)

	sales, err := m.FindAllSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	r, _ := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodPost, "/sales", `{"product_id":42,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	r, _ := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodPost, "/sales", `{"product_id":1,"quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSaleNotFound(t *testing.T) {
	r, _ := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodGet, "/sales/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/sales/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryRejectsUnknownPeriod(t *testing.T) {
	r, _ := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodGet, "/sales/summary?period=year", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/sales/summary?period=week", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTopProductsEndpoint(t *testing.T) {
	seed := catalogSeed()
	seed.Sales = []models.Sale{
		{ID: 1, ProductID: 1, ProductName: "widget", Quantity: 1, UnitPrice: 5, TotalPrice: 5, Date: time.Now()},
		{ID: 2, ProductID: 2, ProductName: "gadget", Quantity: 1, UnitPrice: 50, TotalPrice: 50, Date: time.Now()},
	}
	r, _ := newSalesRouter(seed)

	w := doJSON(r, http.MethodGet, "/sales/top?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var top []models.TopProduct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &top))
	require.Len(t, top, 1)
	assert.Equal(t, "gadget", top[0].ProductName)
}

func TestExportCSV(t *testing.T) {
	seed := catalogSeed()
	seed.Sales = []models.Sale{
		{ID: 1, ProductID: 1, ProductName: "widget", Quantity: 2, UnitPrice: 5, TotalPrice: 10, Date: time.Now()},
	}
	r, _ := newSalesRouter(seed)

	from := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	to := time.Now().Format("2006-01-02")
	w := doJSON(r, http.MethodGet, "/sales/export?from="+from+"&to="+to, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "id,date,product,quantity,unit_price,total_price"))
	assert.Contains(t, body, "widget")
}

func TestExportCSVBadRange(t *testing.T) {
	r, _ := newSalesRouter(catalogSeed())

	w := doJSON(r, http.MethodGet, "/sales/export?from=nope&to=2024-01-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceipt(t *testing.T) {
	seed := catalogSeed()
	seed.Sales = []models.Sale{
		{ID: 1, ProductID: 1, ProductName: "widget", Quantity: 3, UnitPrice: 5, TotalPrice: 15, Date: time.Now()},
	}
	r, _ := newSalesRouter(seed)

	w := doJSON(r, http.MethodGet, "/sales/1/receipt", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Receipt #: 1")
	assert.Contains(t, body, "widget")
	assert.Contains(t, body, "$15.00")
}

func TestDateRangeEndpoint(t *testing.T) {
	now := time.Now()
	seed := catalogSeed()
	seed.Sales = []models.Sale{
		{ID: 1, ProductID: 1, ProductName: "widget", Quantity: 1, UnitPrice: 5, TotalPrice: 5, Date: now},
		{ID: 2, ProductID: 1, ProductName: "widget", Quantity: 1, UnitPrice: 5, TotalPrice: 5, Date: now.AddDate(0, 0, -30)},
	}
	r, _ := newSalesRouter(seed)

	from := now.AddDate(0, 0, -1).Format("2006-01-02")
	to := now.Format("2006-01-02")
	w := doJSON(r, http.MethodGet, "/sales/range?from="+from+"&to="+to, "")
	require.Equal(t, http.StatusOK, w.Code)

	var sales []models.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sales))
	require.Len(t, sales, 1)
	assert.Equal(t, 1, sales[0].ID)
}
