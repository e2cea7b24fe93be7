package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

func TestIsLoopback(t *testing.T) {
	cases := map[string]bool{
		"127.0.0.1":   true,
		"127.8.9.10":  true,
		"::1":         true,
		"192.168.1.4": false,
		"0.0.0.0":     false,
		"":            false,
		"not-an-ip":   false,
	}
	for addr, want := range cases {
		assert.Equal(t, want, isLoopback(addr), addr)
	}
}

func TestRequestLogger_LogsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf)

	app := fiber.New()
	app.Use(RequestLogger(log))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Contains(t, buf.String(), `"path":"/health"`)
	assert.Contains(t, buf.String(), `"status":204`)
	assert.Contains(t, buf.String(), `"component":"http"`)
}
