package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(gen *Generator) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(gen), func(c *fiber.Ctx) error {
		uid, ok := UserID(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"userId": uid.String()})
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "tasktracker", time.Hour)
	app := newProtectedApp(gen)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidAndExpiredLookTheSame(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "tasktracker", time.Hour)
	app := newProtectedApp(gen)

	expiredGen := NewGenerator("super-secret", "tasktracker", -time.Second)
	expired, err := expiredGen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	for _, header := range []string{"Bearer tampered.token.value", "Bearer " + expired} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "tasktracker", time.Hour)
	app := newProtectedApp(gen)

	user := testUser()
	tok, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	// Both header shapes are accepted.
	for _, header := range []string{"Bearer " + tok, tok} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
