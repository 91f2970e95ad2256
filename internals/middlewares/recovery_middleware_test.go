package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error { panic("kas rusak") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
