package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shop-service/internal/model"
)

// OrderLine is one product reference in an order placement request.
type OrderLine struct {
	ProductID uint
	Count     int
}

// FinalizeLine carries the price and count the storefront shows for one
// product during checkout; the finalized total is computed from these.
type FinalizeLine struct {
	Price float64
	Count int
}

// FinalizeRequest selects delivery and payment for a placed order.
type FinalizeRequest struct {
	Products     []FinalizeLine
	DeliveryType string
	PaymentType  string
}

// OrderService drives the order state machine: an order is placed as a
// draft in status "new", finalization computes the total and moves it to
// "awaiting payment", and payment confirmation moves it to "paid".
// Out-of-order transitions fail with ErrConflict.
type OrderService struct {
	orders   OrderRepository
	products ProductRepository
	carts    CartRepository
	lookups  LookupRepository
	log      *zap.Logger
}

// NewOrderService creates an order service.
func NewOrderService(orders OrderRepository, products ProductRepository, carts CartRepository, lookups LookupRepository, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, carts: carts, lookups: lookups, log: log}
}

// Place creates a draft order for the user from a product list and
// clears the user's cart. An empty list is valid and produces an order
// with no line items and a zero total.
func (s *OrderService) Place(ctx context.Context, userID uint, lines []OrderLine) (*model.Order, error) {
	status, err := s.lookups.StatusByName(ctx, model.StatusNew)
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", model.StatusNew, err)
	}
	delivery, err := s.lookups.DeliveryByName(ctx, model.DeliveryOrdinary)
	if err != nil {
		return nil, fmt.Errorf("delivery %q: %w", model.DeliveryOrdinary, err)
	}
	payment, err := s.lookups.PaymentByName(ctx, model.PaymentOnline)
	if err != nil {
		return nil, fmt.Errorf("payment %q: %w", model.PaymentOnline, err)
	}

	order := &model.Order{
		UserID:         userID,
		StatusID:       status.ID,
		DeliveryTypeID: delivery.ID,
		PaymentTypeID:  payment.ID,
	}
	// Orders hold one line per product, so a product referenced more
	// than once folds into a single line with the counts summed.
	lineIndex := make(map[uint]int)
	for _, line := range lines {
		count := line.Count
		if count < 1 {
			count = 1
		}
		if i, ok := lineIndex[line.ProductID]; ok {
			order.Products[i].Count += count
			continue
		}
		if _, err := s.products.GetByID(ctx, line.ProductID); err != nil {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, err)
		}
		lineIndex[line.ProductID] = len(order.Products)
		order.Products = append(order.Products, model.OrderProduct{
			ProductID: line.ProductID,
			Count:     count,
		})
	}

	err = s.orders.InTx(ctx, func(r OrderRepository) error {
		return r.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	// Placement empties the basket but keeps the cart row itself.
	if cart, err := s.carts.GetByUser(ctx, userID); err == nil {
		if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
			s.log.Warn("failed to clear cart after order placement",
				zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	s.log.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Int("lines", len(order.Products)))
	return s.orders.GetByID(ctx, order.ID)
}

// Get returns one order with its lookups and product lines loaded.
func (s *OrderService) Get(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.orders.GetByID(ctx, orderID)
}

// ListByUser returns the user's orders, newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Finalize recomputes the order total from the checkout payload plus
// the selected delivery price, maps the delivery and payment tokens to
// lookup rows and moves the order to "awaiting payment". Only a draft
// order in status "new" can be finalized.
func (s *OrderService) Finalize(ctx context.Context, orderID uint, req FinalizeRequest) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", orderID, err)
	}
	if order.Status.Name != model.StatusNew {
		return nil, fmt.Errorf("%w: order %d is %q, expected %q", ErrConflict, orderID, order.Status.Name, model.StatusNew)
	}

	deliveryName := model.DeliveryOrdinary
	if req.DeliveryType == model.DeliveryExpress {
		deliveryName = model.DeliveryExpress
	}
	delivery, err := s.lookups.DeliveryByName(ctx, deliveryName)
	if err != nil {
		return nil, fmt.Errorf("delivery %q: %w", deliveryName, err)
	}

	paymentName := model.PaymentOnline
	if req.PaymentType == model.PaymentSomeone {
		paymentName = model.PaymentSomeone
	}
	payment, err := s.lookups.PaymentByName(ctx, paymentName)
	if err != nil {
		return nil, fmt.Errorf("payment %q: %w", paymentName, err)
	}

	status, err := s.lookups.StatusByName(ctx, model.StatusAwaitingPayment)
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", model.StatusAwaitingPayment, err)
	}

	total := delivery.Price
	for _, line := range req.Products {
		total += line.Price * float64(line.Count)
	}

	order.DeliveryTypeID = delivery.ID
	order.PaymentTypeID = payment.ID
	order.StatusID = status.ID
	order.TotalCost = total

	err = s.orders.InTx(ctx, func(r OrderRepository) error {
		return r.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order finalized",
		zap.Uint("order_id", order.ID),
		zap.Float64("total_cost", total),
		zap.String("delivery_type", delivery.Name),
		zap.String("payment_type", payment.Name))
	return s.orders.GetByID(ctx, order.ID)
}

// PaymentState reports whether an order's payment has completed. It
// succeeds only for a paid order; an order that has not reached payment
// yet fails with ErrConflict.
func (s *OrderService) PaymentState(ctx context.Context, orderID uint) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("order %d: %w", orderID, err)
	}
	if order.Status.Name != model.StatusPaid {
		return fmt.Errorf("%w: order %d is %q, payment not completed", ErrConflict, orderID, order.Status.Name)
	}
	return nil
}

// Pay marks an awaiting-payment order as paid. Any other starting
// status fails with ErrConflict.
func (s *OrderService) Pay(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", orderID, err)
	}
	if order.Status.Name != model.StatusAwaitingPayment {
		return nil, fmt.Errorf("%w: order %d is %q, expected %q", ErrConflict, orderID, order.Status.Name, model.StatusAwaitingPayment)
	}

	status, err := s.lookups.StatusByName(ctx, model.StatusPaid)
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", model.StatusPaid, err)
	}
	order.StatusID = status.ID

	err = s.orders.InTx(ctx, func(r OrderRepository) error {
		return r.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order paid", zap.Uint("order_id", order.ID))
	return s.orders.GetByID(ctx, order.ID)
}
