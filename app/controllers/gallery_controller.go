package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/gallery"
	"github.com/FelixBrandt/Foliogram/internal/pkg/imageproxy"
	"github.com/FelixBrandt/Foliogram/internal/pkg/search"
	"github.com/FelixBrandt/Foliogram/internal/pkg/session"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewer"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewmodel"
)

// galleryState is the single owner of the resolved category list. Mutation
// always replaces whole values under the lock; readers get copies, never a
// shared mutable reference.
type galleryState struct {
	mu         sync.RWMutex
	service    *gallery.Service
	resolution gallery.Resolution
	loaded     bool
	loadedAt   time.Time
}

var (
	galleryCtl *galleryState
	imgProxy   *imageproxy.Proxy
	viewerMgr  *viewer.Manager
)

// InitializeGalleryController wires the gallery service, the demo/S3 image
// proxy and the viewer session manager into this package.
func InitializeGalleryController(svc *gallery.Service, proxy *imageproxy.Proxy, mgr *viewer.Manager) {
	galleryCtl = &galleryState{service: svc}
	imgProxy = proxy
	viewerMgr = mgr
}

// resolve returns the current resolution, querying the source on first use
// or when force is set.
func (g *galleryState) resolve(ctx context.Context, force bool) gallery.Resolution {
	g.mu.RLock()
	if g.loaded && !force {
		res := g.resolution
		g.mu.RUnlock()
		return res
	}
	g.mu.RUnlock()

	res := g.service.ResolveCategories(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.resolution = res
	g.loaded = true
	g.loadedAt = time.Now()
	return res
}

// allPhotos flattens the resolved categories into one photo list, category
// order first, source order within each category.
func (g *galleryState) allPhotos(ctx context.Context) []models.Photo {
	res := g.resolve(ctx, false)
	var photos []models.Photo
	for _, category := range res.Categories {
		photos = append(photos, category.Photos...)
	}
	return photos
}

// refreshCategory re-queries one category and atomically replaces its photo
// slice. The previous error is cleared before the query so stale error text
// never shows during the new load.
func (g *galleryState) refreshCategory(ctx context.Context, name string) (models.Category, error) {
	g.mu.Lock()
	var target *models.Category
	for i := range g.resolution.Categories {
		if g.resolution.Categories[i].Name == name {
			target = &g.resolution.Categories[i]
			break
		}
	}
	if target == nil {
		g.mu.Unlock()
		return models.Category{}, fiber.ErrNotFound
	}
	folderID := target.FolderID
	target.Error = ""
	target.IsLoading = true
	g.mu.Unlock()

	photos, err := g.service.RefreshCategory(ctx, name, folderID)

	g.mu.Lock()
	defer g.mu.Unlock()
	// Re-locate: the slice may have been replaced by a concurrent resolve.
	for i := range g.resolution.Categories {
		category := &g.resolution.Categories[i]
		if category.Name != name {
			continue
		}
		category.IsLoading = false
		if err != nil {
			category.Error = err.Error()
			log.Errorf("category %s refresh failed: %v", name, err)
			return *category, err
		}
		category.Photos = photos
		return *category, nil
	}
	return models.Category{}, fiber.ErrNotFound
}

// HandleDemoImage serves bundled demo photo bytes through the image proxy.
func HandleDemoImage(c *fiber.Ctx) error {
	return imgProxy.HandleDemoImage(c)
}

// HandleS3Image serves S3-sourced photo bytes through the image proxy.
func HandleS3Image(c *fiber.Ctx) error {
	return imgProxy.HandleS3Image(c)
}

// savedFiltersKey is the session key holding the visitor's last gallery
// query string.
const savedFiltersKey = "gallery_filters"

// rememberFilters persists the request's query string in the session and
// restores the saved one when the gallery is opened bare. It returns a
// redirect target, or "" when the request should render as-is.
func rememberFilters(c *fiber.Ctx) string {
	if c.Query("reset") == "1" {
		if err := session.SetSessionValue(c, savedFiltersKey, ""); err != nil {
			log.Warnf("could not clear saved gallery filters: %v", err)
		}
		return "/gallery"
	}

	rawQuery := string(c.Request().URI().QueryString())
	if rawQuery == "" {
		if saved := session.GetSessionValue(c, savedFiltersKey); saved != "" {
			return "/gallery?" + saved
		}
		return ""
	}

	if err := session.SetSessionValue(c, savedFiltersKey, rawQuery); err != nil {
		log.Warnf("could not save gallery filters: %v", err)
	}
	return ""
}

// HandleGalleryPage renders the gallery with the requested filters applied.
// The active filters stick to the session: opening the gallery without any
// query brings back the last view.
func HandleGalleryPage(c *fiber.Ctx) error {
	if target := rememberFilters(c); target != "" {
		return c.Redirect(target, fiber.StatusFound)
	}

	res := galleryCtl.resolve(c.Context(), false)
	all := galleryCtl.allPhotos(c.Context())

	filters := parseFilters(c)
	showAll := c.Query("show_all") == "1"

	filtered := search.Apply(all, filters)
	visible := search.Visible(filtered, showAll)
	names := search.Categories(all)

	return c.Render("gallery", viewmodel.Gallery{
		Layout:        newLayout(c, "gallery", "Photo Gallery"),
		Source:        res.Source,
		Categories:    res.Categories,
		CategoryNames: names,
		Filters:       filters,
		Photos:        visible,
		Stats:         search.BuildStats(all, filtered, visible, names, showAll),
		ShowAll:       showAll,
	}, "layouts/main")
}
