package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shop-service/internal/middleware"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
	shopmetrics "shop-service/prometheus"
)

// BasketItemRequest defines the structure for basket mutation requests
type BasketItemRequest struct {
	ID    uint `json:"id"`
	Count int  `json:"count"`
}

// BasketHandler serves the per-user cart.
type BasketHandler struct {
	carts *service.CartService
}

// NewBasketHandler creates a basket handler.
func NewBasketHandler(carts *service.CartService) *BasketHandler {
	return &BasketHandler{carts: carts}
}

// Get returns the current basket contents.
func (h *BasketHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	items, err := h.carts.View(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newBasketViews(items))
}

// Add puts a product into the basket and returns the updated basket.
func (h *BasketHandler) Add(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req BasketItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid basket request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	items, err := h.carts.Add(c.Request().Context(), userID, req.ID, req.Count)
	if err != nil {
		return respondError(c, err)
	}

	shopmetrics.RecordCartOperation("add")
	return c.JSON(http.StatusCreated, newBasketViews(items))
}

// Remove takes units of a product out of the basket and returns the
// updated basket. An omitted count removes a single unit.
func (h *BasketHandler) Remove(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req BasketItemRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid basket request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product id is required"})
	}
	if req.Count == 0 {
		req.Count = 1
	}

	items, err := h.carts.Remove(c.Request().Context(), userID, req.ID, req.Count)
	if err != nil {
		return respondError(c, err)
	}

	shopmetrics.RecordCartOperation("remove")
	return c.JSON(http.StatusOK, newBasketViews(items))
}
