package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/metrics/counter"
	"github.com/FelixBrandt/Foliogram/internal/pkg/search"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewmodel"
)

// HandleAPIGalleryResolve returns the resolved categories together with the
// dataset source (live or demo). ?reload=1 forces a fresh resolution.
func HandleAPIGalleryResolve(c *fiber.Ctx) error {
	res := galleryCtl.resolve(c.Context(), c.Query("reload") == "1")
	return c.JSON(res)
}

// HandleAPIGalleryRefresh re-queries one category's folder and replaces its
// photos. Failures stay scoped to the category and are reported for a manual
// retry.
func HandleAPIGalleryRefresh(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "category name missing"})
	}

	category, err := galleryCtl.refreshCategory(c.Context(), name)
	if err == fiber.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "unknown category"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "refresh_failed", "message": err.Error(), "category": category})
	}
	return c.JSON(category)
}

// HandleAPIGallerySearch applies the requested filters to the flattened
// photo set and returns the visible page plus view statistics.
func HandleAPIGallerySearch(c *fiber.Ctx) error {
	filters := parseFilters(c)
	if err := filters.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
	}
	showAll := c.Query("show_all") == "1"

	all := galleryCtl.allPhotos(c.Context())
	filtered := search.Apply(all, filters)
	visible := search.Visible(filtered, showAll)
	names := search.Categories(all)

	return c.JSON(fiber.Map{
		"photos":     visible,
		"filtered":   len(filtered),
		"categories": names,
		"stats":      search.BuildStats(all, filtered, visible, names, showAll),
	})
}

// HandleAPIGalleryPopular returns the most viewed photos. ?limit caps the
// list, default 10.
func HandleAPIGalleryPopular(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	top, err := counter.Top(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "counter_failed", "message": err.Error()})
	}

	byID := make(map[string]models.Photo)
	for _, photo := range galleryCtl.allPhotos(c.Context()) {
		byID[photo.ID] = photo
	}

	type entry struct {
		Photo models.Photo `json:"photo"`
		Views int64        `json:"views"`
	}
	entries := make([]entry, 0, len(top))
	for _, pv := range top {
		if photo, ok := byID[pv.PhotoID]; ok {
			entries = append(entries, entry{Photo: photo, Views: pv.Views})
		}
	}
	return c.JSON(fiber.Map{"photos": entries})
}

// HandleAPIGalleryPopularReset drops all view counters.
func HandleAPIGalleryPopularReset(c *fiber.Ctx) error {
	if err := counter.Reset(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "counter_failed", "message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAPIPhotoMetadata returns the metadata panel payload for one photo:
// its normalized fields plus EXIF data when a local file backs it.
func HandleAPIPhotoMetadata(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, photo := range galleryCtl.allPhotos(c.Context()) {
		if photo.ID != id {
			continue
		}
		views, err := counter.Views(c.Context(), photo.ID)
		if err != nil {
			log.Warnf("view counter unavailable for %s: %v", photo.ID, err)
		}
		return c.JSON(fiber.Map{
			"photo": photo,
			"size":  viewmodel.FormatFileSize(photo.Size),
			"views": views,
			"exif":  imgProxy.DemoMeta(photo.ID),
		})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "photo not found"})
}
