package store

import (
	"math/rand"
	"time"

	"github.com/vd437/quick-cash-control/models"
)

// Seed is the dataset a store starts with.
type Seed struct {
	Users    []models.User
	Products []models.Product
	Sales    []models.Sale
}

// DemoSeed returns the demo catalog: two accounts, six products and five
// recent sales. Demo passwords are stored as plain text on purpose; the
// login helper also accepts bcrypt hashes for real deployments.
func DemoSeed() Seed {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	placeholder := "https://via.placeholder.com/150"

	products := []models.Product{
		{ID: 1, Name: "لابتوب ديل XPS 13", Description: "حاسب محمول خفيف وسريع مع شاشة 13 بوصة", Price: 4999.99, Quantity: 7, LowStockAlert: 5, ImageURL: placeholder, CreatedAt: created, UpdatedAt: created},
		{ID: 2, Name: "سماعات سوني WH-1000XM4", Description: "سماعات لاسلكية بتقنية إلغاء الضوضاء", Price: 899.99, Quantity: 15, LowStockAlert: 5, ImageURL: placeholder, CreatedAt: created, UpdatedAt: created},
		{ID: 3, Name: "آيفون 14 برو ماكس", Description: "أحدث هواتف أبل مع كاميرا متطورة", Price: 5399.99, Quantity: 3, LowStockAlert: 5, ImageURL: placeholder, CreatedAt: created, UpdatedAt: created},
		{ID: 4, Name: "جالاكسي تاب S8", Description: "تابلت سامسونج بشاشة 12 بوصة", Price: 2599.99, Quantity: 9, LowStockAlert: 5, ImageURL: placeholder, CreatedAt: created, UpdatedAt: created},
		{ID: 5, Name: "ساعة أبل الإصدار 8", Description: "ساعة ذكية مع مستشعرات صحية", Price: 1699.99, Quantity: 0, LowStockAlert: 5, ImageURL: placeholder, CreatedAt: created, UpdatedAt: created},
		{ID: 6, Name: "إيكو دوت (الجيل الخامس)", Description: "مكبر صوت ذكي من أمازون", Price: 199.99, Quantity: 25, LowStockAlert: 5, ImageURL: placeholder, CreatedAt: created, UpdatedAt: created},
	}

	return Seed{
		Users: []models.User{
			{ID: 1, Name: "مدير النظام", Email: "admin@example.com", Password: "password", Role: models.RoleAdmin, CreatedAt: created},
			{ID: 2, Name: "الكاشير", Email: "cashier@example.com", Password: "password", Role: models.RoleCashier, CreatedAt: created},
		},
		Products: products,
		Sales: []models.Sale{
			{ID: 1, ProductID: 1, ProductName: products[0].Name, Quantity: 1, UnitPrice: 4999.99, TotalPrice: 4999.99, Date: randomDate(30)},
			{ID: 2, ProductID: 2, ProductName: products[1].Name, Quantity: 2, UnitPrice: 899.99, TotalPrice: 1799.98, Date: randomDate(7)},
			{ID: 3, ProductID: 3, ProductName: products[2].Name, Quantity: 1, UnitPrice: 5399.99, TotalPrice: 5399.99, Date: randomDate(1)},
			{ID: 4, ProductID: 4, ProductName: products[3].Name, Quantity: 1, UnitPrice: 2599.99, TotalPrice: 2599.99, Date: randomDate(1)},
			{ID: 5, ProductID: 2, ProductName: products[1].Name, Quantity: 3, UnitPrice: 899.99, TotalPrice: 2699.97, Date: randomDate(14)},
		},
	}
}

// randomDate picks an instant up to daysBack days in the past so the demo
// dashboard has something in every period window.
func randomDate(daysBack int) time.Time {
	return time.Now().AddDate(0, 0, -rand.Intn(daysBack))
}
