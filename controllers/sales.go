package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vd437/quick-cash-control/i18n"
	"github.com/vd437/quick-cash-control/models"
	"github.com/vd437/quick-cash-control/store"
	"github.com/vd437/quick-cash-control/utils"
)

type SalesController struct {
	Store store.Store
}

func NewSalesController(s store.Store) *SalesController {
	return &SalesController{Store: s}
}

// Create is the cashier checkout. The store itself never rejects an
// oversell (it clamps stock at zero), so sufficient stock is checked here
// before the sale is recorded.
func (sc *SalesController) Create(c *gin.Context) {
	var input models.NewSale
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := sc.Store.FindProductByID(ctx, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if product.Quantity < input.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     i18n.T("insufficientStock"),
			"available": product.Quantity,
		})
		return
	}

	sale, err := sc.Store.CreateSale(ctx, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": i18n.T("saleCompleted"), "sale": sale})
}

func (sc *SalesController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sales, err := sc.Store.FindAllSales(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (sc *SalesController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sale, err := sc.Store.FindSaleByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		return
	}
	if sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// DateRange filters sales between the from and to query parameters,
// inclusive on both ends. Date-only values span the whole day.
func (sc *SalesController) DateRange(c *gin.Context) {
	from, to, ok := rangeParams(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sales, err := sc.Store.SalesByDateRange(ctx, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (sc *SalesController) Summary(c *gin.Context) {
	period := store.Period(c.DefaultQuery("period", string(store.PeriodDay)))
	switch period {
	case store.PeriodDay, store.PeriodWeek, store.PeriodMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Period must be day, week or month"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := sc.Store.SalesSummary(ctx, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (sc *SalesController) Top(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	top, err := sc.Store.TopProducts(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve top products"})
		return
	}
	c.JSON(http.StatusOK, top)
}

// ExportCSV streams the sales of a date range as a CSV attachment.
func (sc *SalesController) ExportCSV(c *gin.Context) {
	from, to, ok := rangeParams(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sales, err := sc.Store.SalesByDateRange(ctx, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales"})
		return
	}

	data, err := utils.SalesCSV(sales)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate CSV"})
		return
	}

	filename := fmt.Sprintf("sales_%s_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(data))
}

// Receipt renders the printable receipt page for a sale.
func (sc *SalesController) Receipt(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sale, err := sc.Store.FindSaleByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		return
	}
	if sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	html, err := utils.ReceiptHTML(*sale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func rangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := parseDateParam(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
		return time.Time{}, time.Time{}, false
	}
	to, err := parseDateParam(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// parseDateParam accepts RFC 3339 timestamps or plain dates. A plain "to"
// date extends to the end of its day so the range stays inclusive.
func parseDateParam(v string, end bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if end {
		t = t.AddDate(0, 0, 1).Add(-time.Millisecond)
	}
	return t, nil
}
