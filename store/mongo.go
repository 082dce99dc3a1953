package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vd437/quick-cash-control/models"
)

// Mongo implements Store on top of MongoDB. It mirrors the in-memory
// contract exactly: sequential integer ids (kept in a counters collection),
// clamped stock decrements, not-found as nil result. Aggregations run as
// cursor loops in Go so the grouping order matches the memory store's
// insertion-order semantics.
type Mongo struct {
	client   *mongo.Client
	users    *mongo.Collection
	products *mongo.Collection
	sales    *mongo.Collection
	counters *mongo.Collection
}

func DialMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := client.Database(database)
	return &Mongo{
		client:   client,
		users:    db.Collection("users"),
		products: db.Collection("products"),
		sales:    db.Collection("sales"),
		counters: db.Collection("counters"),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// SeedIfEmpty loads the seed dataset once, on a fresh database.
func (m *Mongo) SeedIfEmpty(ctx context.Context, seed Seed) error {
	n, err := m.users.CountDocuments(ctx, bson.M{})
	if err != nil || n > 0 {
		return err
	}
	maxIDs := map[string]int{"users": 0, "products": 0, "sales": 0}
	for _, u := range seed.Users {
		if _, err := m.users.InsertOne(ctx, u); err != nil {
			return err
		}
		if u.ID > maxIDs["users"] {
			maxIDs["users"] = u.ID
		}
	}
	for _, p := range seed.Products {
		if _, err := m.products.InsertOne(ctx, p); err != nil {
			return err
		}
		if p.ID > maxIDs["products"] {
			maxIDs["products"] = p.ID
		}
	}
	for _, s := range seed.Sales {
		if _, err := m.sales.InsertOne(ctx, s); err != nil {
			return err
		}
		if s.ID > maxIDs["sales"] {
			maxIDs["sales"] = s.ID
		}
	}
	for name, seq := range maxIDs {
		_, err := m.counters.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$set": bson.M{"seq": seq}},
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

// nextID hands out the next sequential id for a collection.
func (m *Mongo) nextID(ctx context.Context, name string) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) FindUserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) CreateUser(ctx context.Context, data models.NewUser) (*models.User, error) {
	id, err := m.nextID(ctx, "users")
	if err != nil {
		return nil, err
	}
	u := models.User{
		ID:        id,
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		Role:      data.Role,
		CreatedAt: time.Now(),
	}
	if _, err := m.users.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) UpdateUserPassword(ctx context.Context, email, password string) (bool, error) {
	res, err := m.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"password": password}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (m *Mongo) FindAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{})
}

func (m *Mongo) FindProductByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := m.products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) CreateProduct(ctx context.Context, data models.NewProduct) (*models.Product, error) {
	id, err := m.nextID(ctx, "products")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := models.Product{
		ID:            id,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Quantity:      data.Quantity,
		LowStockAlert: data.LowStockAlert,
		ImageURL:      data.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := m.products.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) UpdateProduct(ctx context.Context, id int, data models.NewProduct) (*models.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":            data.Name,
		"description":     data.Description,
		"price":           data.Price,
		"quantity":        data.Quantity,
		"low_stock_alert": data.LowStockAlert,
		"image_url":       data.ImageURL,
		"updated_at":      time.Now(),
	}}
	res, err := m.products.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return m.FindProductByID(ctx, id)
}

func (m *Mongo) RemoveProduct(ctx context.Context, id int) (bool, error) {
	res, err := m.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (m *Mongo) LowStockProducts(ctx context.Context) ([]models.Product, error) {
	filter := bson.M{
		"quantity": bson.M{"$gt": 0},
		"$expr":    bson.M{"$lte": bson.A{"$quantity", "$low_stock_alert"}},
	}
	return m.findProducts(ctx, filter)
}

func (m *Mongo) CountProducts(ctx context.Context) (int, error) {
	n, err := m.products.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (m *Mongo) SetProductImage(ctx context.Context, id int, imageURL, previewURL string) (*models.Product, error) {
	update := bson.M{"$set": bson.M{
		"image_url":   imageURL,
		"preview_url": previewURL,
		"updated_at":  time.Now(),
	}}
	res, err := m.products.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return m.FindProductByID(ctx, id)
}

func (m *Mongo) DecrementStock(ctx context.Context, productID, amount int) (*models.Product, error) {
	p, err := m.FindProductByID(ctx, productID)
	if err != nil || p == nil {
		return nil, err
	}
	q := p.Quantity - amount
	if q < 0 {
		q = 0
	}
	now := time.Now()
	_, err = m.products.UpdateOne(ctx, bson.M{"_id": productID},
		bson.M{"$set": bson.M{"quantity": q, "updated_at": now}})
	if err != nil {
		return nil, err
	}
	p.Quantity = q
	p.UpdatedAt = now
	return p, nil
}

func (m *Mongo) FindAllSales(ctx context.Context) ([]models.Sale, error) {
	return m.findSales(ctx, bson.M{}, bson.D{{Key: "date", Value: -1}})
}

func (m *Mongo) FindSaleByID(ctx context.Context, id int) (*models.Sale, error) {
	var s models.Sale
	err := m.sales.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Mongo) CreateSale(ctx context.Context, data models.NewSale) (*models.Sale, error) {
	s := models.Sale{
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Date:      time.Now(),
	}
	p, err := m.FindProductByID(ctx, data.ProductID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		s.ProductName = p.Name
		s.UnitPrice = p.Price
	}
	s.TotalPrice = float64(s.Quantity) * s.UnitPrice

	id, err := m.nextID(ctx, "sales")
	if err != nil {
		return nil, err
	}
	s.ID = id
	if _, err := m.sales.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	if _, err := m.DecrementStock(ctx, data.ProductID, data.Quantity); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Mongo) SalesByDateRange(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	return m.findSales(ctx, filter, bson.D{{Key: "date", Value: -1}})
}

func (m *Mongo) SalesSummary(ctx context.Context, period Period) (*models.SalesSummary, error) {
	start := periodStart(time.Now(), period)
	// Sorted by _id so grouping follows sale insertion order, like the
	// memory store.
	sales, err := m.findSales(ctx, bson.M{"date": bson.M{"$gte": start}}, bson.D{{Key: "_id", Value: 1}})
	if err != nil {
		return nil, err
	}
	return summarize(sales), nil
}

func (m *Mongo) TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	sales, err := m.findSales(ctx, bson.M{}, bson.D{{Key: "_id", Value: 1}})
	if err != nil {
		return nil, err
	}
	top := summarize(sales).ProductSummary
	sortTopByRevenueDesc(top)
	if limit > 0 && len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (m *Mongo) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := m.products.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := []models.Product{}
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cursor.Err()
}

func (m *Mongo) findSales(ctx context.Context, filter bson.M, sortSpec bson.D) ([]models.Sale, error) {
	cursor, err := m.sales.Find(ctx, filter, options.Find().SetSort(sortSpec))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := []models.Sale{}
	for cursor.Next(ctx) {
		var s models.Sale
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cursor.Err()
}
