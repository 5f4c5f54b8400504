package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/metrics/counter"
	"github.com/FelixBrandt/Foliogram/internal/pkg/search"
	"github.com/FelixBrandt/Foliogram/internal/pkg/session"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewer"
)

// viewerSession resolves the caller's viewer session from their browser
// session id.
func viewerSession(c *fiber.Ctx) (*viewer.Session, error) {
	id, err := session.ID(c)
	if err != nil {
		return nil, err
	}
	return viewerMgr.Session(id), nil
}

type viewerOpenRequest struct {
	PhotoID string `json:"photo_id"`
}

// HandleViewerOpen opens the modal on one photo of the currently filtered
// collection. The filter parameters come with the request, so the session
// always navigates the same set the caller is looking at.
func HandleViewerOpen(c *fiber.Ctx) error {
	var req viewerOpenRequest
	if err := c.BodyParser(&req); err != nil || req.PhotoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "photo_id missing"})
	}

	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}

	filtered := search.Apply(galleryCtl.allPhotos(c.Context()), parseFilters(c))
	index := -1
	for i, p := range filtered {
		if p.ID == req.PhotoID {
			index = i
			break
		}
	}
	if index < 0 || !sess.Open(filtered, index) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "photo not in the filtered collection"})
	}

	if err := counter.AddPhotoView(c.Context(), req.PhotoID); err != nil {
		log.Warnf("failed to count photo view: %v", err)
	}

	return c.JSON(sess.State())
}

type viewerCommandRequest struct {
	Command string `json:"command"`
}

// HandleViewerCommand applies one named transition to the open viewer.
func HandleViewerCommand(c *fiber.Ctx) error {
	var req viewerCommandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}
	cmd, ok := viewer.ParseCommand(req.Command)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "unknown command"})
	}

	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}
	sess.Apply(cmd)
	return c.JSON(sess.State())
}

type viewerKeyRequest struct {
	Key string `json:"key"`
}

// HandleViewerKey maps a KeyboardEvent key name to its bound transition.
// The response says whether the key was handled, so the page only suppresses
// the browser default for bound keys.
func HandleViewerKey(c *fiber.Ctx) error {
	var req viewerKeyRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "key missing"})
	}

	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}
	handled := sess.HandleKey(req.Key)
	return c.JSON(fiber.Map{"handled": handled, "state": sess.State()})
}

type viewerPanRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HandleViewerPan records the drag displacement while zoomed in.
func HandleViewerPan(c *fiber.Ctx) error {
	var req viewerPanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}
	sess.SetPan(req.X, req.Y)
	return c.JSON(sess.State())
}

type viewerQualityRequest struct {
	Quality string `json:"quality"`
}

// HandleViewerQuality switches the displayed quality tier.
func HandleViewerQuality(c *fiber.Ctx) error {
	var req viewerQualityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}
	sess.RequestQuality(models.ParseImageQuality(req.Quality))
	return c.JSON(sess.State())
}

// HandleViewerState returns the current session snapshot. When filters are
// supplied the active collection is re-resolved first, pinning the open
// photo by id.
func HandleViewerState(c *fiber.Ctx) error {
	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}

	if c.Query("apply_filters") == "1" {
		filtered := search.Apply(galleryCtl.allPhotos(c.Context()), parseFilters(c))
		sess.SetCollection(filtered)
	}
	return c.JSON(sess.State())
}

// HandleViewerClose leaves the modal and tears down its slideshow timer.
func HandleViewerClose(c *fiber.Ctx) error {
	sess, err := viewerSession(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session_failed", "message": err.Error()})
	}
	sess.Close()
	return c.JSON(sess.State())
}
