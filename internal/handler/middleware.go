package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/veloxrent/rental-admin/internal/metrics"
)

// HTTPMetrics records the duration of every request against its matched
// route pattern and response status.
func HTTPMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		metrics.ObserveRequest(
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
			time.Since(start).Seconds(),
		)
		return err
	}
}
