package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"shop-service/internal/model"
)

// ReviewService creates reviews and keeps the owning product's derived
// rating fields in step. Aggregation is an explicit call made from the
// creation path, not a storage hook.
type ReviewService struct {
	products ProductRepository
	reviews  ReviewRepository
	log      *zap.Logger
}

// NewReviewService creates a review service.
func NewReviewService(products ProductRepository, reviews ReviewRepository, log *zap.Logger) *ReviewService {
	return &ReviewService{products: products, reviews: reviews, log: log}
}

// Create validates and persists a review for a visible product,
// recomputes the product's aggregates and returns the product's full
// review list.
func (s *ReviewService) Create(ctx context.Context, productID uint, review model.Review) ([]model.Review, error) {
	if review.Rate < 1 || review.Rate > 5 {
		return nil, fmt.Errorf("%w: rate must be between 1 and 5", ErrInvalidArgument)
	}
	if strings.TrimSpace(review.Author) == "" || strings.TrimSpace(review.Text) == "" {
		return nil, fmt.Errorf("%w: author and text are required", ErrInvalidArgument)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, err)
	}
	if product.Archived {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	review.ProductID = productID
	if err := s.reviews.Create(ctx, &review); err != nil {
		return nil, err
	}
	if err := s.RecalculateProduct(ctx, productID); err != nil {
		return nil, err
	}

	s.log.Info("review created",
		zap.Uint("product_id", productID),
		zap.Int("rate", review.Rate))
	return s.reviews.ListByProduct(ctx, productID)
}

// RecalculateProduct rewrites a product's reviews_count and rating from
// its current review set. The rating is the unweighted mean of all rate
// values; a product with no reviews reports a rating of 0.
func (s *ReviewService) RecalculateProduct(ctx context.Context, productID uint) error {
	count, avg, err := s.reviews.Stats(ctx, productID)
	if err != nil {
		return err
	}
	return s.products.UpdateAggregates(ctx, productID, avg, count)
}
