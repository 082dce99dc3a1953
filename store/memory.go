package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vd437/quick-cash-control/models"
)

// Memory is the in-memory Store implementation. All data lives in slices
// owned by the struct and is seeded at construction; nothing survives the
// process. A single RWMutex keeps the read-check-decrement-append sequence
// in CreateSale atomic under concurrent HTTP handlers.
type Memory struct {
	mu       sync.RWMutex
	users    []models.User
	products []models.Product
	sales    []models.Sale

	lastUserID    int
	lastProductID int
	lastSaleID    int

	now func() time.Time
}

// NewMemory builds a store holding the given seed data. IDs keep counting
// after the highest seeded id per collection.
func NewMemory(seed Seed) *Memory {
	m := &Memory{
		users:    append([]models.User(nil), seed.Users...),
		products: append([]models.Product(nil), seed.Products...),
		sales:    append([]models.Sale(nil), seed.Sales...),
		now:      time.Now,
	}
	for _, u := range m.users {
		if u.ID > m.lastUserID {
			m.lastUserID = u.ID
		}
	}
	for _, p := range m.products {
		if p.ID > m.lastProductID {
			m.lastProductID = p.ID
		}
	}
	for _, s := range m.sales {
		if s.ID > m.lastSaleID {
			m.lastSaleID = s.ID
		}
	}
	return m
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) FindUserByID(_ context.Context, id int) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) CreateUser(_ context.Context, data models.NewUser) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUserID++
	u := models.User{
		ID:        m.lastUserID,
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		Role:      data.Role,
		CreatedAt: m.now(),
	}
	m.users = append(m.users, u)
	return &u, nil
}

func (m *Memory) UpdateUserPassword(_ context.Context, email, password string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			m.users[i].Password = password
			return true, nil
		}
	}
	return false, nil
}

// FindAllProducts returns a snapshot copy; mutating the result does not
// touch the store.
func (m *Memory) FindAllProducts(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Product(nil), m.products...), nil
}

func (m *Memory) FindProductByID(_ context.Context, id int) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.productIndex(id); i >= 0 {
		p := m.products[i]
		return &p, nil
	}
	return nil, nil
}

func (m *Memory) CreateProduct(_ context.Context, data models.NewProduct) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.lastProductID++
	p := models.Product{
		ID:            m.lastProductID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Quantity:      data.Quantity,
		LowStockAlert: data.LowStockAlert,
		ImageURL:      data.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.products = append(m.products, p)
	return &p, nil
}

// UpdateProduct replaces every mutable field; there is no partial patch.
func (m *Memory) UpdateProduct(_ context.Context, id int, data models.NewProduct) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.productIndex(id)
	if i < 0 {
		return nil, nil
	}
	p := &m.products[i]
	p.Name = data.Name
	p.Description = data.Description
	p.Price = data.Price
	p.Quantity = data.Quantity
	p.LowStockAlert = data.LowStockAlert
	p.ImageURL = data.ImageURL
	p.UpdatedAt = m.now()
	out := *p
	return &out, nil
}

func (m *Memory) RemoveProduct(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.productIndex(id)
	if i < 0 {
		return false, nil
	}
	m.products = append(m.products[:i], m.products[i+1:]...)
	return true, nil
}

// LowStockProducts returns products with 0 < quantity <= lowStockAlert.
// A product at exactly zero counts as out of stock, not low stock.
func (m *Memory) LowStockProducts(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Product{}
	for _, p := range m.products {
		if p.Quantity > 0 && p.Quantity <= p.LowStockAlert {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Memory) CountProducts(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}

func (m *Memory) SetProductImage(_ context.Context, id int, imageURL, previewURL string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.productIndex(id)
	if i < 0 {
		return nil, nil
	}
	m.products[i].ImageURL = imageURL
	m.products[i].PreviewURL = previewURL
	m.products[i].UpdatedAt = m.now()
	p := m.products[i]
	return &p, nil
}

func (m *Memory) DecrementStock(_ context.Context, productID, amount int) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.decrementStockLocked(productID, amount)
	if p == nil {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (m *Memory) decrementStockLocked(productID, amount int) *models.Product {
	i := m.productIndex(productID)
	if i < 0 {
		return nil
	}
	q := m.products[i].Quantity - amount
	if q < 0 {
		q = 0
	}
	m.products[i].Quantity = q
	m.products[i].UpdatedAt = m.now()
	return &m.products[i]
}

func (m *Memory) FindAllSales(_ context.Context) ([]models.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]models.Sale(nil), m.sales...)
	sortSalesByDateDesc(out)
	return out, nil
}

func (m *Memory) FindSaleByID(_ context.Context, id int) (*models.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.sales {
		if m.sales[i].ID == id {
			s := m.sales[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *Memory) CreateSale(_ context.Context, data models.NewSale) (*models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := models.Sale{
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Date:      m.now(),
	}
	if i := m.productIndex(data.ProductID); i >= 0 {
		s.ProductName = m.products[i].Name
		s.UnitPrice = m.products[i].Price
	}
	s.TotalPrice = float64(s.Quantity) * s.UnitPrice

	m.lastSaleID++
	s.ID = m.lastSaleID
	m.sales = append(m.sales, s)
	m.decrementStockLocked(data.ProductID, data.Quantity)
	return &s, nil
}

// SalesByDateRange filters inclusively on both bounds, newest first.
func (m *Memory) SalesByDateRange(_ context.Context, from, to time.Time) ([]models.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Sale{}
	for _, s := range m.sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	sortSalesByDateDesc(out)
	return out, nil
}

func (m *Memory) SalesSummary(_ context.Context, period Period) (*models.SalesSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	start := periodStart(m.now(), period)
	filtered := []models.Sale{}
	for _, s := range m.sales {
		if !s.Date.Before(start) {
			filtered = append(filtered, s)
		}
	}
	return summarize(filtered), nil
}

// TopProducts aggregates every sale ever recorded, ordered by revenue
// descending. Equal revenue keeps first-seen order.
func (m *Memory) TopProducts(_ context.Context, limit int) ([]models.TopProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	top := summarize(m.sales).ProductSummary
	sortTopByRevenueDesc(top)
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (m *Memory) productIndex(id int) int {
	for i := range m.products {
		if m.products[i].ID == id {
			return i
		}
	}
	return -1
}

func sortSalesByDateDesc(sales []models.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
}
