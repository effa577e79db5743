package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerSetsID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestID").(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ping", func(c *fiber.Ctx) error { return fiber.ErrTeapot })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}
