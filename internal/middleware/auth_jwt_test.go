package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "mw-test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTUidOnly(secret))
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.SendString("open")
	})
	protected := app.Group("/p", RequireAuth())
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func signed(t *testing.T, claims jwt.Claims, key []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestMissingHeader(t *testing.T) {
	app := newApp()

	// Anonymous requests pass the JWT middleware but not RequireAuth.
	resp := get(t, app, "/open", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = get(t, app, "/p/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidToken(t *testing.T) {
	app := newApp()
	tok := signed(t, jwt.RegisteredClaims{
		Subject:   "64f000000000000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte(secret))

	resp := get(t, app, "/p/whoami", tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "64f000000000000000000001")
}

func TestExpiredToken(t *testing.T) {
	app := newApp()
	tok := signed(t, jwt.RegisteredClaims{
		Subject:   "64f000000000000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, []byte(secret))

	resp := get(t, app, "/p/whoami", tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// A bad token is rejected even on routes RequireAuth does not guard.
	resp = get(t, app, "/open", tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWrongKey(t *testing.T) {
	app := newApp()
	tok := signed(t, jwt.RegisteredClaims{
		Subject:   "64f000000000000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte("some-other-secret"))

	resp := get(t, app, "/p/whoami", tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenWithoutSubject(t *testing.T) {
	app := newApp()
	tok := signed(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte(secret))

	resp := get(t, app, "/p/whoami", tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGarbageToken(t *testing.T) {
	app := newApp()
	resp := get(t, app, "/p/whoami", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
