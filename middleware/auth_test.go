package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret!"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		userID, err := GetUserID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"userId": userID})
	})
	return app
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newTestApp()

	token := signToken(t, jwt.MapClaims{
		"user_id":  float64(1),
		"username": "walker",
		"is_guest": false,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newTestApp()

	token := signToken(t, jwt.MapClaims{
		"user_id":  float64(42),
		"username": "walker",
		"is_guest": false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
