package gallery

import (
	"fmt"
	"strconv"

	"github.com/FelixBrandt/Foliogram/app/models"
)

const (
	driveThumbnailEndpoint = "https://drive.google.com/thumbnail"
	driveContentEndpoint   = "https://drive.google.com/uc"

	boxThumbnail = "w300-h300"
	boxMedium    = "w800-h600"
	boxHigh      = "w1920-h1080"
)

// imageURLs holds the four derived resolution tiers of a file.
type imageURLs struct {
	thumbnail string
	medium    string
	high      string
	original  string
}

func deriveImageURLs(file File) imageURLs {
	if file.BaseURL != "" {
		return imageURLs{
			thumbnail: file.BaseURL + "?sz=" + boxThumbnail,
			medium:    file.BaseURL + "?sz=" + boxMedium,
			high:      file.BaseURL + "?sz=" + boxHigh,
			original:  file.BaseURL,
		}
	}
	return imageURLs{
		thumbnail: fmt.Sprintf("%s?id=%s&sz=%s", driveThumbnailEndpoint, file.ID, boxThumbnail),
		medium:    fmt.Sprintf("%s?id=%s&sz=%s", driveThumbnailEndpoint, file.ID, boxMedium),
		high:      fmt.Sprintf("%s?id=%s&sz=%s", driveThumbnailEndpoint, file.ID, boxHigh),
		original:  fmt.Sprintf("%s?id=%s", driveContentEndpoint, file.ID),
	}
}

// Normalize converts a raw source record into a Photo. It is pure and total:
// absent fields degrade to documented defaults (size 0, description derived
// from name and category). URLs are derived here once and never recomputed.
func Normalize(file File, categoryName string) models.Photo {
	urls := deriveImageURLs(file)

	size, _ := strconv.ParseInt(file.Size, 10, 64)
	if size < 0 {
		size = 0
	}

	downloadURL := file.WebContentLink
	if downloadURL == "" {
		downloadURL = urls.original
	}

	return models.Photo{
		ID:             file.ID,
		Name:           file.Name,
		URL:            urls.medium,
		ThumbnailURL:   urls.thumbnail,
		MediumURL:      urls.medium,
		HighQualityURL: urls.high,
		OriginalURL:    urls.original,
		DownloadURL:    downloadURL,
		Category:       categoryName,
		CreatedTime:    file.CreatedTime,
		Description:    fmt.Sprintf("%s - %s", file.Name, categoryName),
		Size:           size,
		MimeType:       file.MimeType,
	}
}
