package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, role string) (string, string) {
	t.Helper()
	userId := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id": userId,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed, userId
}

func newProtectedApp(secret string, roles ...string) *fiber.App {
	app := fiber.New()
	h := app.Group("/protected")
	h.Use(JwtMiddleware(secret))
	if len(roles) > 0 {
		h.Use(RequireRole(roles...))
	}
	h.Get("", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals("user_id"),
			"role":    ctx.Locals("role"),
		})
	})
	return app
}

// A token signed the way the auth service signs it must pass the
// middleware built from the same configured secret, including the
// default one used when JWT_SECRET is unset.
func TestJwtMiddlewareRoundTrip(t *testing.T) {
	for _, secret := range []string{"default_secret", "configured-secret"} {
		app := newProtectedApp(secret)
		token, _ := signToken(t, secret, "customer")

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestJwtMiddlewareRejectsWrongSecret(t *testing.T) {
	app := newProtectedApp("configured-secret")
	token, _ := signToken(t, "some-other-secret", "customer")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	app := newProtectedApp("configured-secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	secret := "configured-secret"

	app := newProtectedApp(secret, "admin")

	adminToken, _ := signToken(t, secret, "admin")
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	customerToken, _ := signToken(t, secret, "customer")
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
