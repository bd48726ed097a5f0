package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdash/config"
	"orderdash/middleware"
	"orderdash/models"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestJWTMiddlewareOpenMode(t *testing.T) {
	config.AppConfig.JWTSecret = ""
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	config.AppConfig.JWTSecret = "secret"
	defer func() { config.AppConfig.JWTSecret = "" }()
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "secret"
	defer func() { config.AppConfig.JWTSecret = "" }()
	app := newProtectedApp()

	claims := models.JwtClaims{
		Email: "admin@example.com",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
