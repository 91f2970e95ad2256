package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "rahasia-kas"

func sign(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/kas", AuthJWT(AuthJWTOpts{Secret: secret}), TreasurerOnly(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocUserID).(string))
	})
	return app
}

func status(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/kas", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWTAndRoles(t *testing.T) {
	app := newApp()
	exp := time.Now().Add(time.Hour).Unix()

	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "bukan-token"))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, sign(t, "kunci-lain", jwt.MapClaims{"sub": "u1", "role": "treasurer", "exp": exp})))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, sign(t, secret, jwt.MapClaims{"sub": "u1", "role": "treasurer", "exp": time.Now().Add(-time.Hour).Unix()})))

	assert.Equal(t, fiber.StatusForbidden, status(t, app, sign(t, secret, jwt.MapClaims{"sub": "u1", "role": "student", "exp": exp})))
	assert.Equal(t, fiber.StatusOK, status(t, app, sign(t, secret, jwt.MapClaims{"sub": "u1", "role": "treasurer", "exp": exp})))
	assert.Equal(t, fiber.StatusOK, status(t, app, sign(t, secret, jwt.MapClaims{"id": "u2", "roles": []string{"user", "admin"}, "exp": exp})))
}

func TestAuthJWTWithoutSecretRejects(t *testing.T) {
	app := fiber.New()
	app.Get("/kas", AuthJWT(AuthJWTOpts{}), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	req := httptest.NewRequest("GET", "/kas", nil)
	req.Header.Set("Authorization", "Bearer x")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
