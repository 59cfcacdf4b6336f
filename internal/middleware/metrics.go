package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	shopmetrics "shop-service/prometheus"
)

// MetricsMiddleware captures request duration and count for each route.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().Status)
		endpoint := c.Path()
		method := c.Request().Method

		shopmetrics.RequestDuration.With(prometheus.Labels{
			"endpoint": endpoint,
			"method":   method,
			"status":   status,
		}).Observe(duration)

		shopmetrics.HTTPRequestCounter.With(prometheus.Labels{
			"endpoint": endpoint,
			"method":   method,
			"status":   status,
		}).Inc()

		return err
	}
}
