package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/portfolio"
)

type recordingMessenger struct {
	sent []*models.ContactMessage
}

func (m *recordingMessenger) Send(msg *models.ContactMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func contactApp(t *testing.T) (*fiber.App, *recordingMessenger) {
	t.Helper()
	messenger := &recordingMessenger{}
	InitializeContactController(messenger)
	t.Cleanup(func() { InitializeContactController(portfolio.LogMessenger{}) })

	app := fiber.New()
	app.Post("/api/v1/contact", HandleAPIContact)
	return app, messenger
}

func TestHandleAPIContact(t *testing.T) {
	t.Run("accepts a valid submission", func(t *testing.T) {
		app, messenger := contactApp(t)

		body := `{"name":"Jamie","email":"jamie@example.com","subject":"Prints","message":"I would love a print of the beach sunset photo."}`
		req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
		require.Len(t, messenger.sent, 1)
		assert.Equal(t, "Prints", messenger.sent[0].Subject)
	})

	t.Run("rejects an invalid submission", func(t *testing.T) {
		app, messenger := contactApp(t)

		body := `{"name":"","email":"nope","subject":"","message":""}`
		req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Empty(t, messenger.sent)
	})

	t.Run("rejects an unreadable body", func(t *testing.T) {
		app, _ := contactApp(t)

		req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleThemeToggle(t *testing.T) {
	app := fiber.New()
	app.Post("/theme/toggle", HandleThemeToggle)

	t.Run("defaults to switching into dark", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/theme/toggle", nil))
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Set-Cookie"), "theme=dark")
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})

	t.Run("switches back to light and honors the referer", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/theme/toggle", nil)
		req.Header.Set("Cookie", "theme=dark")
		req.Header.Set("Referer", "/gallery")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Contains(t, resp.Header.Get("Set-Cookie"), "theme=light")
		assert.Equal(t, "/gallery", resp.Header.Get("Location"))
	})
}
