package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shop-service/internal/service"
	"shop-service/pkg/logger"
	shopmetrics "shop-service/prometheus"
)

// respondError converts a service failure into the API error payload.
// Sentinel errors map onto their status codes; anything else is an
// internal fault and deliberately not echoed to the client.
func respondError(c echo.Context, err error) error {
	log := logger.FromContext(c)

	switch {
	case errors.Is(err, service.ErrNotFound):
		shopmetrics.RecordRequestError("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidArgument):
		shopmetrics.RecordRequestError("invalid_argument")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		shopmetrics.RecordRequestError("conflict")
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		log.Error("Request failed", zap.Error(err))
		shopmetrics.RecordRequestError("internal")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
