package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shop-service/internal/middleware"
	"shop-service/internal/model"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
	shopmetrics "shop-service/prometheus"
)

// OrderLineRequest is one product reference in an order placement body.
type OrderLineRequest struct {
	ID    uint `json:"id"`
	Count int  `json:"count"`
}

// FinalizeLineRequest is one product line of a checkout payload.
type FinalizeLineRequest struct {
	Price float64 `json:"price"`
	Count int     `json:"count"`
}

// FinalizeRequest defines the structure for order finalization requests
type FinalizeRequest struct {
	Products     []FinalizeLineRequest `json:"products"`
	DeliveryType string                `json:"deliveryType"`
	PaymentType  string                `json:"paymentType"`
}

// OrderHandler drives order placement, finalization and payment.
type OrderHandler struct {
	orders   *service.OrderService
	profiles service.ProfileRepository
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(orders *service.OrderService, profiles service.ProfileRepository) *OrderHandler {
	return &OrderHandler{orders: orders, profiles: profiles}
}

// List returns the authenticated user's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	orders, err := h.orders.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	profile := h.ownerProfile(c, userID)
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order, profile))
	}
	return c.JSON(http.StatusOK, views)
}

// Place creates a draft order from a product list and clears the cart.
func (h *OrderHandler) Place(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req []OrderLineRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid order request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	lines := make([]service.OrderLine, 0, len(req))
	for _, line := range req {
		lines = append(lines, service.OrderLine{ProductID: line.ID, Count: line.Count})
	}

	order, err := h.orders.Place(c.Request().Context(), userID, lines)
	if err != nil {
		return respondError(c, err)
	}

	shopmetrics.OrdersPlacedCounter.Inc()
	log.Info("Order placed", zap.Uint("order_id", order.ID))

	response := echo.Map{
		"order":   newOrderView(*order, h.ownerProfile(c, userID)),
		"orderId": order.ID,
	}
	return c.JSON(http.StatusCreated, response)
}

// Get returns one order.
func (h *OrderHandler) Get(c echo.Context) error {
	if _, ok := middleware.UserID(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := h.orders.Get(c.Request().Context(), uint(orderID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderView(*order, h.ownerProfile(c, order.UserID)))
}

// Finalize computes the order total from the checkout payload and moves
// the order to awaiting payment.
func (h *OrderHandler) Finalize(c echo.Context) error {
	log := logger.FromContext(c)
	if _, ok := middleware.UserID(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	var req FinalizeRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid finalize request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	finalize := service.FinalizeRequest{
		DeliveryType: req.DeliveryType,
		PaymentType:  req.PaymentType,
	}
	for _, line := range req.Products {
		finalize.Products = append(finalize.Products, service.FinalizeLine{
			Price: line.Price,
			Count: line.Count,
		})
	}

	order, err := h.orders.Finalize(c.Request().Context(), uint(orderID), finalize)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Order finalized",
		zap.Uint("order_id", order.ID),
		zap.Float64("total_cost", order.TotalCost))
	return c.JSON(http.StatusCreated, echo.Map{"orderId": order.ID})
}

// PaymentState confirms a completed payment.
func (h *OrderHandler) PaymentState(c echo.Context) error {
	if _, ok := middleware.UserID(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	if err := h.orders.PaymentState(c.Request().Context(), uint(orderID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "payment completed"})
}

// Pay marks an awaiting-payment order as paid.
func (h *OrderHandler) Pay(c echo.Context) error {
	log := logger.FromContext(c)
	if _, ok := middleware.UserID(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := h.orders.Pay(c.Request().Context(), uint(orderID))
	if err != nil {
		return respondError(c, err)
	}

	shopmetrics.OrdersPaidCounter.Inc()
	log.Info("Order paid", zap.Uint("order_id", order.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "order status updated"})
}

// ownerProfile loads the profile shown on order views; a user without a
// profile just renders empty contact fields.
func (h *OrderHandler) ownerProfile(c echo.Context, userID uint) *model.UserProfile {
	profile, err := h.profiles.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return nil
	}
	return profile
}
