package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vd437/quick-cash-control/models"
	"github.com/vd437/quick-cash-control/store"
)

type DashboardController struct {
	Store store.Store
}

func NewDashboardController(s store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

// Dashboard assembles everything the admin landing page shows: summaries
// for all three periods, the top sellers, low-stock alerts and the catalog
// size.
func (d *DashboardController) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := models.DashboardSummary{}

	for _, p := range []struct {
		period store.Period
		dst    *models.SalesSummary
	}{
		{store.PeriodDay, &out.Today},
		{store.PeriodWeek, &out.Week},
		{store.PeriodMonth, &out.Month},
	} {
		summary, err := d.Store.SalesSummary(ctx, p.period)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
			return
		}
		*p.dst = *summary
	}

	top, err := d.Store.TopProducts(ctx, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve top products"})
		return
	}
	out.TopProducts = top

	low, err := d.Store.LowStockProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	out.LowStock = low

	count, err := d.Store.CountProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
		return
	}
	out.ProductCount = count

	c.JSON(http.StatusOK, out)
}
