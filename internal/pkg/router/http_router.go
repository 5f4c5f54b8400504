package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FelixBrandt/Foliogram/app/controllers"
	"github.com/FelixBrandt/Foliogram/internal/pkg/constants"
	"github.com/FelixBrandt/Foliogram/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session store, the viewer keys its per-visitor state on it
	session.NewSessionStore()

	h.registerPublicRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get(constants.HomeRoute, controllers.HandleHome)
	app.Get(constants.GalleryRoute, controllers.HandleGalleryPage)

	// Contact
	app.Get(constants.ContactRoute, controllers.HandleContact)
	app.Post(constants.ContactRoute, controllers.HandleContactSubmit)

	// Theme preference
	app.Post(constants.ThemeRoute, controllers.HandleThemeToggle)

	// Image proxy for demo and S3-backed photos
	app.Get(constants.DemoImageRoute, controllers.HandleDemoImage)
	app.Get(constants.S3ImageRoute, controllers.HandleS3Image)
}
