package store

import (
	"context"
	"sort"
	"time"

	"github.com/vd437/quick-cash-control/models"
)

// Period selects the window for SalesSummary.
type Period string

const (
	PeriodDay   Period = "day"   // start of the current calendar day, local time
	PeriodWeek  Period = "week"  // rolling window: now minus 7 days
	PeriodMonth Period = "month" // now minus one month field (with rollover)
)

// Store is the single source of truth for users, products and sales.
//
// "Not found" is reported as a nil result with a nil error; errors are
// reserved for the backing storage failing (the in-memory implementation
// never returns one). The store performs no input validation and never
// rejects an oversell: CreateSale always records the sale and clamps the
// product stock at zero. Checking stock before selling is the caller's job.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int) (*models.User, error)
	CreateUser(ctx context.Context, data models.NewUser) (*models.User, error)
	UpdateUserPassword(ctx context.Context, email, password string) (bool, error)

	FindAllProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, data models.NewProduct) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, data models.NewProduct) (*models.Product, error)
	RemoveProduct(ctx context.Context, id int) (bool, error)
	LowStockProducts(ctx context.Context) ([]models.Product, error)
	CountProducts(ctx context.Context) (int, error)
	SetProductImage(ctx context.Context, id int, imageURL, previewURL string) (*models.Product, error)

	// DecrementStock sets quantity = max(0, quantity-amount) and refreshes
	// UpdatedAt. It silently clamps when amount exceeds the stock.
	DecrementStock(ctx context.Context, productID, amount int) (*models.Product, error)

	FindAllSales(ctx context.Context) ([]models.Sale, error)
	FindSaleByID(ctx context.Context, id int) (*models.Sale, error)

	// CreateSale records the sale, snapshotting the product's current name
	// and price, and decrements the product stock as a side effect. The
	// side effect is unconditional.
	CreateSale(ctx context.Context, data models.NewSale) (*models.Sale, error)

	SalesByDateRange(ctx context.Context, from, to time.Time) ([]models.Sale, error)
	SalesSummary(ctx context.Context, period Period) (*models.SalesSummary, error)
	TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error)
}

// summarize groups sales by product, summing units and revenue. Group order
// is the order in which a product is first seen in sales, which for both
// implementations is sale insertion order.
func summarize(sales []models.Sale) *models.SalesSummary {
	sum := &models.SalesSummary{ProductSummary: []models.ProductSummary{}}
	index := map[int]int{}
	for _, s := range sales {
		sum.TotalSales++
		sum.TotalRevenue += s.TotalPrice
		if i, ok := index[s.ProductID]; ok {
			sum.ProductSummary[i].TotalSold += s.Quantity
			sum.ProductSummary[i].TotalRevenue += s.TotalPrice
			continue
		}
		index[s.ProductID] = len(sum.ProductSummary)
		sum.ProductSummary = append(sum.ProductSummary, models.ProductSummary{
			ProductID:    s.ProductID,
			ProductName:  s.ProductName,
			TotalSold:    s.Quantity,
			TotalRevenue: s.TotalPrice,
		})
	}
	return sum
}

// sortTopByRevenueDesc orders stable, so products with equal revenue keep
// their first-seen order.
func sortTopByRevenueDesc(top []models.ProductSummary) {
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalRevenue > top[j].TotalRevenue
	})
}

// periodStart maps a summary period onto its window start. Month subtraction
// follows the month field, so e.g. March 31 minus one month normalizes past
// the end of February instead of landing on it.
func periodStart(now time.Time, period Period) time.Time {
	switch period {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, -1, 0)
	}
}
