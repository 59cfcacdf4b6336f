package handler

import (
	"context"
	"sort"

	"shop-service/internal/model"
	"shop-service/internal/service"
)

// In-memory stores backing the handler tests.

type memProducts struct {
	products map[uint]*model.Product
}

func (m *memProducts) GetByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return p, nil
}

func (m *memProducts) GetVisible(_ context.Context, id uint) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok || p.Archived {
		return nil, service.ErrNotFound
	}
	return p, nil
}

func (m *memProducts) ListPopular(context.Context) ([]model.Product, error) { return nil, nil }
func (m *memProducts) ListLimited(context.Context) ([]model.Product, error) { return nil, nil }
func (m *memProducts) ListBanners(context.Context, int) ([]model.Product, error) {
	return nil, nil
}

func (m *memProducts) UpdateAggregates(_ context.Context, id uint, rating float64, reviewsCount int) error {
	p, ok := m.products[id]
	if !ok {
		return service.ErrNotFound
	}
	p.Rating = rating
	p.ReviewsCount = reviewsCount
	return nil
}

type memCarts struct {
	lastID   uint
	carts    map[uint]*model.Cart
	items    map[uint]*model.CartItem
	products *memProducts
}

func newMemCarts(products *memProducts) *memCarts {
	return &memCarts{
		carts:    make(map[uint]*model.Cart),
		items:    make(map[uint]*model.CartItem),
		products: products,
	}
}

func (m *memCarts) InTx(_ context.Context, fn func(service.CartRepository) error) error {
	return fn(m)
}

func (m *memCarts) GetByUser(_ context.Context, userID uint) (*model.Cart, error) {
	for _, cart := range m.carts {
		if cart.UserID == userID {
			return cart, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *memCarts) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	if cart, err := m.GetByUser(ctx, userID); err == nil {
		return cart, nil
	}
	m.lastID++
	cart := &model.Cart{ID: m.lastID, UserID: userID}
	m.carts[cart.ID] = cart
	return cart, nil
}

func (m *memCarts) GetItem(_ context.Context, cartID, productID uint) (*model.CartItem, error) {
	for _, item := range m.items {
		if item.CartID == cartID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *memCarts) CreateItem(_ context.Context, item *model.CartItem) error {
	m.lastID++
	item.ID = m.lastID
	stored := *item
	m.items[item.ID] = &stored
	return nil
}

func (m *memCarts) UpdateItemCount(_ context.Context, itemID uint, count int) error {
	item, ok := m.items[itemID]
	if !ok {
		return service.ErrNotFound
	}
	item.Count = count
	return nil
}

func (m *memCarts) DeleteItem(_ context.Context, itemID uint) error {
	delete(m.items, itemID)
	return nil
}

func (m *memCarts) ListItems(_ context.Context, cartID uint) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, item := range m.items {
		if item.CartID != cartID {
			continue
		}
		loaded := *item
		if p, ok := m.products.products[item.ProductID]; ok {
			loaded.Product = *p
		}
		out = append(out, loaded)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCarts) ClearItems(_ context.Context, cartID uint) error {
	for id, item := range m.items {
		if item.CartID == cartID {
			delete(m.items, id)
		}
	}
	return nil
}

type memLookups struct {
	statuses   map[string]*model.OrderStatus
	deliveries map[string]*model.DeliveryType
	payments   map[string]*model.PaymentType
}

func newMemLookups() *memLookups {
	return &memLookups{
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

func (m *memLookups) StatusByName(_ context.Context, name string) (*model.OrderStatus, error) {
	if s, ok := m.statuses[name]; ok {
		return s, nil
	}
	return nil, service.ErrNotFound
}

func (m *memLookups) DeliveryByName(_ context.Context, name string) (*model.DeliveryType, error) {
	if d, ok := m.deliveries[name]; ok {
		return d, nil
	}
	return nil, service.ErrNotFound
}

func (m *memLookups) PaymentByName(_ context.Context, name string) (*model.PaymentType, error) {
	if p, ok := m.payments[name]; ok {
		return p, nil
	}
	return nil, service.ErrNotFound
}

type memOrders struct {
	lastID   uint
	orders   map[uint]*model.Order
	lookups  *memLookups
	products *memProducts
}

func newMemOrders(lookups *memLookups, products *memProducts) *memOrders {
	return &memOrders{
		orders:   make(map[uint]*model.Order),
		lookups:  lookups,
		products: products,
	}
}

func (m *memOrders) InTx(_ context.Context, fn func(service.OrderRepository) error) error {
	return fn(m)
}

func (m *memOrders) Create(_ context.Context, order *model.Order) error {
	m.lastID++
	order.ID = m.lastID
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id uint) (*model.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return m.load(order), nil
}

func (m *memOrders) ListByUser(_ context.Context, userID uint) ([]model.Order, error) {
	var out []model.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out = append(out, *m.load(order))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memOrders) Update(_ context.Context, order *model.Order) error {
	stored, ok := m.orders[order.ID]
	if !ok {
		return service.ErrNotFound
	}
	stored.StatusID = order.StatusID
	stored.DeliveryTypeID = order.DeliveryTypeID
	stored.PaymentTypeID = order.PaymentTypeID
	stored.TotalCost = order.TotalCost
	return nil
}

func (m *memOrders) load(order *model.Order) *model.Order {
	loaded := *order
	for _, s := range m.lookups.statuses {
		if s.ID == order.StatusID {
			loaded.Status = *s
		}
	}
	for _, d := range m.lookups.deliveries {
		if d.ID == order.DeliveryTypeID {
			loaded.DeliveryType = *d
		}
	}
	for _, p := range m.lookups.payments {
		if p.ID == order.PaymentTypeID {
			loaded.PaymentType = *p
		}
	}
	loaded.Products = make([]model.OrderProduct, len(order.Products))
	copy(loaded.Products, order.Products)
	for i := range loaded.Products {
		if p, ok := m.products.products[loaded.Products[i].ProductID]; ok {
			loaded.Products[i].Product = *p
		}
	}
	return &loaded
}

type memProfiles struct {
	profiles map[uint]*model.UserProfile
}

func (m *memProfiles) GetByUser(_ context.Context, userID uint) (*model.UserProfile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, service.ErrNotFound
}
