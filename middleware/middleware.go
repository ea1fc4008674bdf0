package middleware

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	green  = "\033[32m" // Green for 200 OK
	yellow = "\033[33m" // Yellow for 300 series
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

func statusColor(statusCode int) string {
	switch {
	case statusCode < http.StatusMultipleChoices:
		return green
	case statusCode < http.StatusBadRequest:
		return yellow
	default:
		return red
	}
}

// RequestLogger logs every handled request with its status and latency.
func RequestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		log.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
		}).Infof("%s[%d] %s%s", statusColor(status), status, http.StatusText(status), reset)

		return err
	}
}
