package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"profile-service/internal/pkg/jwt"
	"profile-service/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body io.Reader) response.SemanticResponse {
	t.Helper()
	var out response.SemanticResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Use(NewErrorMiddleware(nil).Middleware())
	for _, h := range handlers {
		app.Use(h)
	}
	return app
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newApp()
	app.Get("/bad", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusForbidden, "", map[string]string{"k": "v"}, nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, response.MessageForbidden, body.Message)
	assert.Equal(t, map[string]interface{}{"k": "v"}, body.Data)
}

func TestErrorMiddleware_HidesInternalCause(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password is hunter2", nil, errors.New("secret"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("raw failure")
	})

	for _, path := range []string{"/boom", "/plain"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, response.MessageInternalServerError, decode(t, resp.Body).Message)
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newApp()
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestErrorMiddleware_FiberNotFound(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAccessLog_RequestID(t *testing.T) {
	app := newApp()
	app.Get("/", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "fixed-id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get(HeaderRequestID))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Minute, "profile-service")
	app := newApp(NewAuthMiddleware(svc).Middleware())
	app.Get("/whoami", func(c fiber.Ctx) error {
		name, ok := Username(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.SendString(name)
	})

	token, err := svc.GenerateAccessToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "u1", string(b))

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, header)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := bearerTokenFromHeader("  bearer   abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerTokenFromHeader("Token abc")
	assert.False(t, ok)
}
