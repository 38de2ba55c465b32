package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"elearn/config"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)
	return signed
}

func requestWithToken(t *testing.T, app *fiber.App, token string) int {
	t.Helper()

	req := httptest.NewRequest("GET", "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTMiddleware(t *testing.T) {
	config.LoadConfig()
	app := setupGuardedApp()

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/secure", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong header format", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, "not-a-jwt"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": 1,
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, signed))
	})

	t.Run("expired token", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{
			"userId": 1,
			"exp":    time.Now().Add(-time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, signed))
	})

	t.Run("missing userId claim", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, signed))
	})

	// Well-signed token with a string userId must be rejected, not crash
	t.Run("non numeric userId claim", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{
			"userId": "abc",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusUnauthorized, requestWithToken(t, app, signed))
	})

	t.Run("valid token passes", func(t *testing.T) {
		signed, err := middleware.GenerateJWT(42, "Ana", "ADMIN", "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, requestWithToken(t, app, signed))
	})
}
