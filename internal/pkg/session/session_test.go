package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMemoryStore swaps the package store for an in-memory one for the
// duration of the test.
func withMemoryStore(t *testing.T) {
	t.Helper()
	previous := sessionStore
	sessionStore = session.New(session.Config{KeyLookup: "cookie:session_id"})
	t.Cleanup(func() { sessionStore = previous })
}

func newValueApp() *fiber.App {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		if err := SetSessionValue(c, "last_filters", c.Query("v")); err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString("ok")
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		return c.SendString(GetSessionValue(c, "last_filters"))
	})
	app.Get("/id", func(c *fiber.Ctx) error {
		id, err := ID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(id)
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			return cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestSessionValues(t *testing.T) {
	t.Run("values round-trip within one session", func(t *testing.T) {
		withMemoryStore(t)
		app := newValueApp()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set?v=sort_by=name", nil))
		require.NoError(t, err)
		cookie := sessionCookie(t, resp)

		req := httptest.NewRequest(http.MethodGet, "/get", nil)
		req.AddCookie(cookie)
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "sort_by=name", body(t, resp))
	})

	t.Run("other sessions see nothing", func(t *testing.T) {
		withMemoryStore(t)
		app := newValueApp()

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/set?v=secret", nil))
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get", nil))
		require.NoError(t, err)
		assert.Empty(t, body(t, resp))
	})

	t.Run("session id is stable across requests", func(t *testing.T) {
		withMemoryStore(t)
		app := newValueApp()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil))
		require.NoError(t, err)
		first := body(t, resp)
		require.NotEmpty(t, first)
		cookie := sessionCookie(t, resp)

		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.AddCookie(cookie)
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, first, body(t, resp))
	})

	t.Run("uninitialized store degrades instead of panicking", func(t *testing.T) {
		previous := sessionStore
		sessionStore = nil
		t.Cleanup(func() { sessionStore = previous })

		app := newValueApp()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set?v=x", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/get", nil))
		require.NoError(t, err)
		assert.Empty(t, body(t, resp))

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/id", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
