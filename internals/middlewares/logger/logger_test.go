package logger

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocRequestID, "req-123")
		return c.Next()
	})
	app.Use(newLogger(&buf))
	app.Get("/kas", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/kas", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	line := buf.String()
	assert.Contains(t, line, "reqid=req-123")
	assert.Contains(t, line, "GET /kas - 204")
}
