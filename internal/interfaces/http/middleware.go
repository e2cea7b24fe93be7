package http

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tour-invoice-desk/internal/application/dto"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// LoopbackOnly rejects requests that do not come from this machine.
// The console holds one operator's booking and has no authentication.
func LoopbackOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isLoopback(c.IP()) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "the operator console only accepts local connections",
			})
		}
		return c.Next()
	}
}

func isLoopback(addr string) bool {
	ip := net.ParseIP(addr)
	return ip != nil && ip.IsLoopback()
}

// RequestLogger logs one line per request with status and latency.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Err(err).
			Msg("request")
		return err
	}
}
