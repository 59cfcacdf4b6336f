package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shop-service/internal/model"
)

// CartService manages the per-user basket. Each mutation runs inside a
// single transaction so the read-modify-write on the item count cannot
// interleave with a concurrent call for the same cart.
type CartService struct {
	products ProductRepository
	carts    CartRepository
	log      *zap.Logger
}

// NewCartService creates a cart service.
func NewCartService(products ProductRepository, carts CartRepository, log *zap.Logger) *CartService {
	return &CartService{products: products, carts: carts, log: log}
}

// Add puts count units of a product into the user's cart, creating the
// cart lazily and summing counts for an existing line item. It returns
// the full cart view after the mutation.
func (s *CartService) Add(ctx context.Context, userID, productID uint, count int) ([]model.CartItem, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrInvalidArgument)
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, err)
	}

	err := s.carts.InTx(ctx, func(r CartRepository) error {
		cart, err := r.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		item, err := r.GetItem(ctx, cart.ID, productID)
		switch {
		case err == nil:
			return r.UpdateItemCount(ctx, item.ID, item.Count+count)
		case isNotFound(err):
			return r.CreateItem(ctx, &model.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Count:     count,
			})
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("cart item added",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
		zap.Int("count", count))
	return s.View(ctx, userID)
}

// Remove takes count units of a product out of the user's cart. The
// count must be positive; a missing line item is a no-op; a decrement
// below zero fails without touching stored state; a decrement to
// exactly zero deletes the row.
func (s *CartService) Remove(ctx context.Context, userID, productID uint, count int) ([]model.CartItem, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrInvalidArgument)
	}
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart for user %d: %w", userID, err)
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, err)
	}

	err = s.carts.InTx(ctx, func(r CartRepository) error {
		item, err := r.GetItem(ctx, cart.ID, productID)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		remaining := item.Count - count
		switch {
		case remaining < 0:
			return fmt.Errorf("%w: count cannot be negative", ErrInvalidArgument)
		case remaining == 0:
			return r.DeleteItem(ctx, item.ID)
		default:
			return r.UpdateItemCount(ctx, item.ID, remaining)
		}
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("cart item removed",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
		zap.Int("count", count))
	return s.View(ctx, userID)
}

// View returns the cart's line items with products loaded. A user
// without a cart simply has an empty basket.
func (s *CartService) View(ctx context.Context, userID uint) ([]model.CartItem, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if isNotFound(err) {
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.carts.ListItems(ctx, cart.ID)
}
