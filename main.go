package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/FelixBrandt/Foliogram/app/controllers"
	"github.com/FelixBrandt/Foliogram/internal/pkg/cache"
	"github.com/FelixBrandt/Foliogram/internal/pkg/drive"
	"github.com/FelixBrandt/Foliogram/internal/pkg/env"
	"github.com/FelixBrandt/Foliogram/internal/pkg/gallery"
	"github.com/FelixBrandt/Foliogram/internal/pkg/imageproxy"
	"github.com/FelixBrandt/Foliogram/internal/pkg/loader"
	"github.com/FelixBrandt/Foliogram/internal/pkg/portfolio"
	"github.com/FelixBrandt/Foliogram/internal/pkg/router"
	"github.com/FelixBrandt/Foliogram/internal/pkg/s3source"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewer"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	cache.SetupCache()

	source, objects := setupGallerySource()
	folders := gallery.ParseFolderConfig(env.GetEnv("GALLERY_FOLDERS", ""))
	service := gallery.NewService(source, folders, cache.Store{})

	proxy := imageproxy.New(env.GetEnv("DEMO_IMAGE_DIR", "./public/images/demo"), objects)
	viewerMgr := viewer.NewManager(loader.NewHTTPFetcher())

	controllers.InitializeMainController(portfolio.DefaultContent())
	controllers.InitializeGalleryController(service, proxy, viewerMgr)
	controllers.InitializeContactController(&portfolio.LogMessenger{})

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())
	app.Static("/", "./public/assets")

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}

// setupGallerySource picks the photo source from the environment: the
// Google Drive API by default, an S3-compatible bucket when GALLERY_SOURCE
// is "s3", or none at all, which puts the gallery in demo mode.
func setupGallerySource() (gallery.Source, imageproxy.ObjectStore) {
	if env.GetEnv("GALLERY_SOURCE", "drive") == "s3" {
		cfg, err := s3source.LoadConfig()
		if err != nil {
			fiberlog.Warnf("s3 gallery source not usable: %v", err)
			return nil, nil
		}
		client, err := s3source.NewClient(cfg)
		if err != nil {
			fiberlog.Warnf("s3 gallery source not usable: %v", err)
			return nil, nil
		}
		return client, client
	}

	apiKey := env.GetEnv("GOOGLE_DRIVE_API_KEY", "")
	if apiKey == "" {
		fiberlog.Warn("no GOOGLE_DRIVE_API_KEY configured, gallery runs in demo mode")
		return nil, nil
	}
	return drive.NewClient(apiKey), nil
}
