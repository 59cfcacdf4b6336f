package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shop-service/internal/model"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
	shopmetrics "shop-service/prometheus"
)

// ReviewRequest defines the structure for review creation requests
type ReviewRequest struct {
	Author string `json:"author"`
	Email  string `json:"email"`
	Text   string `json:"text"`
	Rate   int    `json:"rate"`
}

// ReviewHandler creates product reviews.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create adds a review to a product and returns the product's updated
// review list.
func (h *ReviewHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid review request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	reviews, err := h.reviews.Create(c.Request().Context(), uint(productID), model.Review{
		Author: req.Author,
		Email:  req.Email,
		Text:   req.Text,
		Rate:   req.Rate,
	})
	if err != nil {
		return respondError(c, err)
	}

	shopmetrics.ReviewsCreatedCounter.Inc()
	log.Info("Review created",
		zap.Uint64("product_id", productID),
		zap.Int("rate", req.Rate))
	return c.JSON(http.StatusCreated, newReviewViews(reviews))
}
