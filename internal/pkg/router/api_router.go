package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/FelixBrandt/Foliogram/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// Gallery
	v1.Get("/gallery", controllers.HandleAPIGalleryResolve)
	v1.Get("/gallery/search", controllers.HandleAPIGallerySearch)
	v1.Post("/gallery/categories/:name/refresh", controllers.HandleAPIGalleryRefresh)
	v1.Get("/gallery/popular", controllers.HandleAPIGalleryPopular)
	v1.Delete("/gallery/popular", controllers.HandleAPIGalleryPopularReset)
	v1.Get("/photos/:id/metadata", controllers.HandleAPIPhotoMetadata)

	// Viewer
	v1.Get("/viewer", controllers.HandleViewerState)
	v1.Post("/viewer/open", controllers.HandleViewerOpen)
	v1.Post("/viewer/command", controllers.HandleViewerCommand)
	v1.Post("/viewer/key", controllers.HandleViewerKey)
	v1.Post("/viewer/pan", controllers.HandleViewerPan)
	v1.Post("/viewer/quality", controllers.HandleViewerQuality)
	v1.Post("/viewer/close", controllers.HandleViewerClose)

	// Contact
	v1.Post("/contact", controllers.HandleAPIContact)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
