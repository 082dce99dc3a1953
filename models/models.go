package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

type User struct {
	ID        int       `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"` // "admin" or "cashier"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Product struct {
	ID            int       `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Price         float64   `bson:"price" json:"price"`
	Quantity      int       `bson:"quantity" json:"quantity"`
	LowStockAlert int       `bson:"low_stock_alert" json:"low_stock_alert"`
	ImageURL      string    `bson:"image_url" json:"image_url"`
	PreviewURL    string    `bson:"preview_url,omitempty" json:"preview_url,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Sale keeps a snapshot of the product name and unit price taken at sale
// time; editing or deleting the product later does not rewrite history.
type Sale struct {
	ID          int       `bson:"_id" json:"id"`
	ProductID   int       `bson:"product_id" json:"product_id"`
	ProductName string    `bson:"product_name" json:"product_name"`
	Quantity    int       `bson:"quantity" json:"quantity"`
	UnitPrice   float64   `bson:"unit_price" json:"unit_price"`
	TotalPrice  float64   `bson:"total_price" json:"total_price"`
	Date        time.Time `bson:"date" json:"date"`
}

type ProductSummary struct {
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type SalesSummary struct {
	TotalSales     int              `json:"total_sales"`
	TotalRevenue   float64          `json:"total_revenue"`
	ProductSummary []ProductSummary `json:"product_summary"`
}

// TopProduct has the same shape as ProductSummary but is aggregated over
// all sales, not a period window.
type TopProduct = ProductSummary

type DashboardSummary struct {
	Today        SalesSummary `json:"today"`
	Week         SalesSummary `json:"week"`
	Month        SalesSummary `json:"month"`
	TopProducts  []TopProduct `json:"top_products"`
	LowStock     []Product    `json:"low_stock_products"`
	ProductCount int          `json:"product_count"`
}

type NewUser struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type NewProduct struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	LowStockAlert int     `json:"low_stock_alert"`
	ImageURL      string  `json:"image_url"`
}

type NewSale struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}
