package service

import (
	"context"
	"fmt"
	"sort"

	"shop-service/internal/catalog"
	"shop-service/internal/model"
)

// In-memory repository fakes backing the service tests.

type fakeProductRepo struct {
	products map[uint]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uint]*model.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetVisible(_ context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok || p.Archived {
		return nil, ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) ListPopular(_ context.Context) ([]model.Product, error) {
	return f.flagged(func(p *model.Product) bool { return p.Popular }), nil
}

func (f *fakeProductRepo) ListLimited(_ context.Context) ([]model.Product, error) {
	return f.flagged(func(p *model.Product) bool { return p.Limited }), nil
}

func (f *fakeProductRepo) ListBanners(_ context.Context, limit int) ([]model.Product, error) {
	banners := f.flagged(func(p *model.Product) bool { return p.Banner })
	if limit > 0 && len(banners) > limit {
		banners = banners[:limit]
	}
	return banners, nil
}

func (f *fakeProductRepo) flagged(match func(*model.Product) bool) []model.Product {
	var ids []uint
	for id, p := range f.products {
		if match(p) && !p.Archived {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.products[id])
	}
	return out
}

func (f *fakeProductRepo) UpdateAggregates(_ context.Context, id uint, rating float64, reviewsCount int) error {
	p, ok := f.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Rating = rating
	p.ReviewsCount = reviewsCount
	return nil
}

type fakeCartRepo struct {
	nextCartID uint
	nextItemID uint
	carts      map[uint]*model.Cart // keyed by cart id
	items      map[uint]*model.CartItem
	products   *fakeProductRepo
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{
		carts:    make(map[uint]*model.Cart),
		items:    make(map[uint]*model.CartItem),
		products: products,
	}
}

func (f *fakeCartRepo) InTx(_ context.Context, fn func(CartRepository) error) error {
	return fn(f)
}

func (f *fakeCartRepo) GetByUser(_ context.Context, userID uint) (*model.Cart, error) {
	for _, cart := range f.carts {
		if cart.UserID == userID {
			return cart, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCartRepo) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	if cart, err := f.GetByUser(ctx, userID); err == nil {
		return cart, nil
	}
	f.nextCartID++
	cart := &model.Cart{ID: f.nextCartID, UserID: userID}
	f.carts[cart.ID] = cart
	return cart, nil
}

func (f *fakeCartRepo) GetItem(_ context.Context, cartID, productID uint) (*model.CartItem, error) {
	for _, item := range f.items {
		if item.CartID == cartID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCartRepo) CreateItem(_ context.Context, item *model.CartItem) error {
	f.nextItemID++
	item.ID = f.nextItemID
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeCartRepo) UpdateItemCount(_ context.Context, itemID uint, count int) error {
	item, ok := f.items[itemID]
	if !ok {
		return ErrNotFound
	}
	item.Count = count
	return nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, itemID uint) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepo) ListItems(_ context.Context, cartID uint) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, item := range f.items {
		if item.CartID != cartID {
			continue
		}
		loaded := *item
		if p, ok := f.products.products[item.ProductID]; ok {
			loaded.Product = *p
		}
		out = append(out, loaded)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCartRepo) ClearItems(_ context.Context, cartID uint) error {
	for id, item := range f.items {
		if item.CartID == cartID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeLookupRepo struct {
	statuses   map[string]*model.OrderStatus
	deliveries map[string]*model.DeliveryType
	payments   map[string]*model.PaymentType
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{
		statuses: map[string]*model.OrderStatus{
			model.StatusNew:             {ID: 1, Name: model.StatusNew},
			model.StatusAwaitingPayment: {ID: 2, Name: model.StatusAwaitingPayment},
			model.StatusPaid:            {ID: 3, Name: model.StatusPaid},
		},
		deliveries: map[string]*model.DeliveryType{
			model.DeliveryOrdinary: {ID: 1, Name: model.DeliveryOrdinary, Price: 200},
			model.DeliveryExpress:  {ID: 2, Name: model.DeliveryExpress, Price: 500},
		},
		payments: map[string]*model.PaymentType{
			model.PaymentOnline:  {ID: 1, Name: model.PaymentOnline},
			model.PaymentSomeone: {ID: 2, Name: model.PaymentSomeone},
		},
	}
}

func (f *fakeLookupRepo) StatusByName(_ context.Context, name string) (*model.OrderStatus, error) {
	if s, ok := f.statuses[name]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (f *fakeLookupRepo) DeliveryByName(_ context.Context, name string) (*model.DeliveryType, error) {
	if d, ok := f.deliveries[name]; ok {
		return d, nil
	}
	return nil, ErrNotFound
}

func (f *fakeLookupRepo) PaymentByName(_ context.Context, name string) (*model.PaymentType, error) {
	if p, ok := f.payments[name]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (f *fakeLookupRepo) statusByID(id uint) model.OrderStatus {
	for _, s := range f.statuses {
		if s.ID == id {
			return *s
		}
	}
	return model.OrderStatus{}
}

func (f *fakeLookupRepo) deliveryByID(id uint) model.DeliveryType {
	for _, d := range f.deliveries {
		if d.ID == id {
			return *d
		}
	}
	return model.DeliveryType{}
}

func (f *fakeLookupRepo) paymentByID(id uint) model.PaymentType {
	for _, p := range f.payments {
		if p.ID == id {
			return *p
		}
	}
	return model.PaymentType{}
}

type fakeOrderRepo struct {
	nextID   uint
	orders   map[uint]*model.Order
	lookups  *fakeLookupRepo
	products *fakeProductRepo
}

func newFakeOrderRepo(lookups *fakeLookupRepo, products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uint]*model.Order),
		lookups:  lookups,
		products: products,
	}
}

func (f *fakeOrderRepo) InTx(_ context.Context, fn func(OrderRepository) error) error {
	return fn(f)
}

func (f *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	f.nextID++
	order.ID = f.nextID
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uint) (*model.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return f.load(order), nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID uint) ([]model.Order, error) {
	var out []model.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, *f.load(order))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *model.Order) error {
	stored, ok := f.orders[order.ID]
	if !ok {
		return ErrNotFound
	}
	stored.StatusID = order.StatusID
	stored.DeliveryTypeID = order.DeliveryTypeID
	stored.PaymentTypeID = order.PaymentTypeID
	stored.TotalCost = order.TotalCost
	return nil
}

// load resolves the lookup and product references the way the gorm
// repository preloads them.
func (f *fakeOrderRepo) load(order *model.Order) *model.Order {
	loaded := *order
	loaded.Status = f.lookups.statusByID(order.StatusID)
	loaded.DeliveryType = f.lookups.deliveryByID(order.DeliveryTypeID)
	loaded.PaymentType = f.lookups.paymentByID(order.PaymentTypeID)
	loaded.Products = make([]model.OrderProduct, len(order.Products))
	copy(loaded.Products, order.Products)
	for i := range loaded.Products {
		if p, ok := f.products.products[loaded.Products[i].ProductID]; ok {
			loaded.Products[i].Product = *p
		}
	}
	return &loaded
}

type fakeReviewRepo struct {
	nextID  uint
	reviews []model.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	f.nextID++
	review.ID = f.nextID
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, productID uint) ([]model.Review, error) {
	var out []model.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Stats(_ context.Context, productID uint) (int, float64, error) {
	count := 0
	sum := 0
	for _, r := range f.reviews {
		if r.ProductID == productID {
			count++
			sum += r.Rate
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}

type fakeCatalogRepo struct {
	products []model.Product
}

func (f *fakeCatalogRepo) Count(_ context.Context, _ catalog.Query) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeCatalogRepo) List(_ context.Context, _ catalog.Query, offset, limit int) ([]model.Product, error) {
	if offset >= len(f.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[offset:end], nil
}

func makeProducts(n int) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{
			ID:    uint(i + 1),
			Title: fmt.Sprintf("product %d", i+1),
			Price: float64((i + 1) * 10),
		}
	}
	return products
}
