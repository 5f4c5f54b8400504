package gallery

import "github.com/FelixBrandt/Foliogram/app/models"

// demoPhoto builds one bundled demo photo. Demo image bytes are served by the
// local image proxy, so every quality tier resolves against /gallery/demo.
func demoPhoto(id, name, category, createdTime, description string, size int64) models.Photo {
	base := "/gallery/demo/" + id
	return models.Photo{
		ID:             id,
		Name:           name,
		URL:            base + "?sz=" + boxMedium,
		ThumbnailURL:   base + "?sz=" + boxThumbnail,
		MediumURL:      base + "?sz=" + boxMedium,
		HighQualityURL: base + "?sz=" + boxHigh,
		OriginalURL:    base,
		DownloadURL:    base,
		Category:       category,
		CreatedTime:    createdTime,
		Description:    description,
		Size:           size,
		MimeType:       "image/jpeg",
	}
}

// DemoCategories is the bundled dataset shown when no folders are configured
// or every configured folder comes back empty. Real and demo data are never
// mixed within one resolution.
func DemoCategories() []models.Category {
	return []models.Category{
		{
			Name:       "Holiday Moments",
			FolderID:   "demo-holiday",
			IsExpanded: true,
			Photos: []models.Photo{
				demoPhoto("demo-holiday-1", "Christmas Tree Decoration.jpg", "Holiday Moments",
					"2024-12-23T15:00:00Z",
					"Decorating the Christmas tree with family - creating festive memories together", 2048000),
				demoPhoto("demo-holiday-2", "New Year Celebration.jpg", "Holiday Moments",
					"2024-01-01T00:00:00Z",
					"Welcoming the new year with friends and family", 1856000),
			},
		},
		{
			Name:       "Family Vacation",
			FolderID:   "demo-vacation",
			IsExpanded: true,
			Photos: []models.Photo{
				demoPhoto("demo-vacation-1", "Beach Sunset.jpg", "Family Vacation",
					"2024-08-20T18:45:00Z",
					"Beautiful sunset at the beach during our family vacation - a moment of peace and beauty", 3024000),
				demoPhoto("demo-vacation-2", "Family Group Photo.jpg", "Family Vacation",
					"2024-08-21T10:15:00Z",
					"Our complete family together during the vacation - precious memories captured forever", 2756000),
			},
		},
		{
			Name:       "Birthday Celebration 2024",
			FolderID:   "demo-birthday",
			IsExpanded: true,
			Photos: []models.Photo{
				demoPhoto("demo-birthday-1", "Birthday Cake Moment.jpg", "Birthday Celebration 2024",
					"2024-06-15T18:00:00Z",
					"The special moment of cutting my birthday cake surrounded by friends and family", 2248000),
			},
		},
	}
}
