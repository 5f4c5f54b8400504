package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelixBrandt/Foliogram/internal/pkg/gallery"
	"github.com/FelixBrandt/Foliogram/internal/pkg/imageproxy"
	"github.com/FelixBrandt/Foliogram/internal/pkg/loader"
	"github.com/FelixBrandt/Foliogram/internal/pkg/search"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewer"
)

// newDemoAPI wires the controllers against an unconfigured gallery service,
// so everything resolves to the demo dataset.
func newDemoAPI(t *testing.T) *fiber.App {
	t.Helper()

	InitializeGalleryController(
		gallery.NewService(nil, nil, nil),
		imageproxy.New(t.TempDir(), nil),
		viewer.NewManager(loader.NewHTTPFetcher()),
	)

	app := fiber.New()
	app.Get("/api/v1/gallery", HandleAPIGalleryResolve)
	app.Get("/api/v1/gallery/search", HandleAPIGallerySearch)
	app.Post("/api/v1/gallery/categories/:name/refresh", HandleAPIGalleryRefresh)
	app.Get("/api/v1/photos/:id/metadata", HandleAPIPhotoMetadata)
	return app
}

func decode(t *testing.T, body io.Reader, into any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(into))
}

func TestHandleAPIGalleryResolve(t *testing.T) {
	app := newDemoAPI(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/gallery", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res gallery.Resolution
	decode(t, resp.Body, &res)
	assert.Equal(t, gallery.SourceDemo, res.Source)
	assert.Len(t, res.Categories, 3)
}

func TestHandleAPIGallerySearch(t *testing.T) {
	app := newDemoAPI(t)

	t.Run("filters the demo set", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/gallery/search?search_text=sunset", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload struct {
			Photos   []struct{ ID string `json:"id"` } `json:"photos"`
			Filtered int                               `json:"filtered"`
			Stats    search.Stats                      `json:"stats"`
		}
		decode(t, resp.Body, &payload)
		require.Equal(t, 1, payload.Filtered)
		assert.Equal(t, "demo-vacation-1", payload.Photos[0].ID)
		assert.Equal(t, 5, payload.Stats.TotalPhotos)
	})

	t.Run("rejects invalid filters", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/gallery/search?sort_by=color", nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleAPIGalleryRefresh(t *testing.T) {
	app := newDemoAPI(t)

	// Prime the resolution so the demo categories exist.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/gallery", nil))
	require.NoError(t, err)
	resp.Body.Close()

	t.Run("unknown category is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/gallery/categories/Nope/refresh", nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("refresh without a source is a gateway failure", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/gallery/categories/Holiday%20Moments/refresh", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

		var payload struct {
			Error string `json:"error"`
		}
		decode(t, resp.Body, &payload)
		assert.Equal(t, "refresh_failed", payload.Error)
	})
}

func TestHandleAPIPhotoMetadata(t *testing.T) {
	app := newDemoAPI(t)

	t.Run("known photo", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/photos/demo-vacation-1/metadata", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload struct {
			Photo struct{ Name string `json:"name"` } `json:"photo"`
			Size  string                              `json:"size"`
		}
		decode(t, resp.Body, &payload)
		assert.Equal(t, "Beach Sunset.jpg", payload.Photo.Name)
		assert.Equal(t, "2.9 MB", payload.Size)
	})

	t.Run("unknown photo is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/photos/nope/metadata", nil))
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
