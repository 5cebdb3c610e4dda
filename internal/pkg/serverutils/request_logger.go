package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

// RequestID returns the id assigned by the requestid middleware, or "" when
// the middleware is not mounted.
func RequestID(c *fiber.Ctx) string {
	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return rid
}

// RequestLogger writes one structured access log line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		err := c.Next()

		entry := log.WithFields(log.Fields{
			"method":     c.Method(),
			"path":       path,
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
			"request_id": RequestID(c),
		})
		if err != nil {
			entry.WithError(err).Warn("request completed with errors")
		} else {
			entry.Info("request completed")
		}
		return err
	}
}
