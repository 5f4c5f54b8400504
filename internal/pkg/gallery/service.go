package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/FelixBrandt/Foliogram/app/models"
)

const (
	// SourceLive marks a resolution built from the configured folders.
	SourceLive = "live"
	// SourceDemo marks a resolution built from the bundled demo dataset.
	SourceDemo = "demo"

	listingCacheTTL = 5 * time.Minute
)

// ListingCache is the subset of the cache layer the service uses to front
// folder listings. A nil cache disables caching entirely.
type ListingCache interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
	Delete(key string) error
}

// Resolution is the explicit outcome of resolving the configured folders:
// which dataset is being served and the categories that make it up.
type Resolution struct {
	Source     string            `json:"source"`
	Categories []models.Category `json:"categories"`
}

// Service queries the configured photo source and shapes results into
// categories. It performs no retries; callers surface errors and offer a
// manual retry.
type Service struct {
	source  Source
	folders []FolderConfig
	cache   ListingCache
}

// NewService builds a gallery service. source may be nil when nothing is
// configured; cache may be nil to query the source directly every time.
func NewService(source Source, folders []FolderConfig, cache ListingCache) *Service {
	return &Service{source: source, folders: folders, cache: cache}
}

// Folders returns the configured category/folder bindings.
func (s *Service) Folders() []FolderConfig {
	return s.folders
}

// ResolveCategories queries every configured folder concurrently and builds
// one category per folder. Per-category failures are isolated: a failing
// folder yields an empty photo list plus an error string and leaves its
// siblings untouched. When nothing is configured, or every category resolves
// empty, the bundled demo dataset is returned instead.
func (s *Service) ResolveCategories(ctx context.Context) Resolution {
	if s.source == nil || len(s.folders) == 0 {
		log.Warn("no gallery folders configured, serving demo data")
		return Resolution{Source: SourceDemo, Categories: DemoCategories()}
	}

	categories := make([]models.Category, len(s.folders))
	var wg sync.WaitGroup
	for i, folder := range s.folders {
		wg.Add(1)
		go func(i int, folder FolderConfig) {
			defer wg.Done()
			categories[i] = s.fetchCategory(ctx, folder)
		}(i, folder)
	}
	wg.Wait()

	allEmpty := true
	for _, category := range categories {
		if len(category.Photos) > 0 {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		log.Warn("configured gallery folders are empty or inaccessible, serving demo data")
		return Resolution{Source: SourceDemo, Categories: DemoCategories()}
	}

	return Resolution{Source: SourceLive, Categories: categories}
}

// RefreshCategory re-queries exactly one folder and returns its fresh photo
// list. Callers replace the category's photo slice with the result; partial
// merges are never performed. Any cached listing is dropped first so the
// refresh hits the source.
func (s *Service) RefreshCategory(ctx context.Context, name, folderID string) ([]models.Photo, error) {
	if s.source == nil {
		return nil, fmt.Errorf("no photo source configured")
	}

	folderID = ExtractFolderID(folderID)
	if s.cache != nil {
		if err := s.cache.Delete(listingCacheKey(folderID)); err != nil {
			log.Debugf("listing cache invalidation failed for folder %s: %v", folderID, err)
		}
	}

	files, err := s.listImages(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh category %s: %w", name, err)
	}

	photos := make([]models.Photo, 0, len(files))
	for _, file := range files {
		photos = append(photos, Normalize(file, name))
	}
	return photos, nil
}

func (s *Service) fetchCategory(ctx context.Context, folder FolderConfig) models.Category {
	files, err := s.listImages(ctx, folder.FolderID)
	if err != nil {
		log.Errorf("failed to load category %s: %v", folder.Name, err)
		return models.Category{
			Name:     folder.Name,
			FolderID: folder.FolderID,
			Photos:   []models.Photo{},
			Error:    fmt.Sprintf("Failed to load photos: %v", err),
		}
	}

	photos := make([]models.Photo, 0, len(files))
	for _, file := range files {
		photos = append(photos, Normalize(file, folder.Name))
	}

	return models.Category{
		Name:       folder.Name,
		FolderID:   folder.FolderID,
		Photos:     photos,
		IsExpanded: true,
	}
}

func (s *Service) listImages(ctx context.Context, folderID string) ([]File, error) {
	key := listingCacheKey(folderID)
	if s.cache != nil {
		if raw, err := s.cache.Get(key); err == nil {
			var files []File
			if err := json.Unmarshal([]byte(raw), &files); err == nil {
				return files, nil
			}
		}
	}

	files, err := s.source.ListImages(ctx, folderID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(files); err == nil {
			if err := s.cache.Set(key, string(raw), listingCacheTTL); err != nil {
				log.Debugf("listing cache write failed for folder %s: %v", folderID, err)
			}
		}
	}
	return files, nil
}

func listingCacheKey(folderID string) string {
	return "gallery:listing:" + folderID
}
