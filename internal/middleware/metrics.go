package middleware

import (
	"strconv"
	"time"

	"go-order-tracker/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per route template.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		if metrics.HttpRequestsTotal == nil {
			return err
		}

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		// Route path keeps label cardinality bounded (/orders/:id, not every id)
		path := c.Route().Path
		code := strconv.Itoa(status)

		metrics.HttpRequestsTotal.WithLabelValues(c.Method(), path, code).Inc()
		metrics.HttpRequestDuration.WithLabelValues(c.Method(), path, code).Observe(time.Since(start).Seconds())
		return err
	}
}
