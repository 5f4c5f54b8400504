package models

// ImageQuality identifies one of the derived resolution tiers of a photo.
type ImageQuality string

const (
	QualityThumbnail ImageQuality = "thumbnail"
	QualityMedium    ImageQuality = "medium"
	QualityHigh      ImageQuality = "high"
	QualityOriginal  ImageQuality = "original"
)

// ParseImageQuality maps a raw quality string to a known tier. Unknown values
// fall back to medium, mirroring the default display quality.
func ParseImageQuality(s string) ImageQuality {
	switch ImageQuality(s) {
	case QualityThumbnail, QualityMedium, QualityHigh, QualityOriginal:
		return ImageQuality(s)
	default:
		return QualityMedium
	}
}

// Photo is a single normalized image entity. All URL fields are derived once
// at normalization time and never change afterwards.
type Photo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	ThumbnailURL   string `json:"thumbnail_url"`
	MediumURL      string `json:"medium_url"`
	HighQualityURL string `json:"high_quality_url"`
	OriginalURL    string `json:"original_url"`
	DownloadURL    string `json:"download_url"`
	Category       string `json:"category"`
	CreatedTime    string `json:"created_time"`
	Description    string `json:"description,omitempty"`
	Size           int64  `json:"size,omitempty"`
	MimeType       string `json:"mime_type,omitempty"`
}

// ImageURL returns the derived URL for the requested quality tier.
func (p Photo) ImageURL(quality ImageQuality) string {
	switch quality {
	case QualityThumbnail:
		return p.ThumbnailURL
	case QualityHigh:
		return p.HighQualityURL
	case QualityOriginal:
		return p.OriginalURL
	default:
		return p.MediumURL
	}
}

// Category is a named, ordered grouping of photos backed by one source folder.
// Refreshing a category replaces its Photos slice wholesale; photos are never
// merged into an existing slice.
type Category struct {
	Name       string  `json:"name"`
	FolderID   string  `json:"folder_id"`
	Photos     []Photo `json:"photos"`
	IsExpanded bool    `json:"is_expanded"`
	IsLoading  bool    `json:"is_loading"`
	Error      string  `json:"error,omitempty"`
}
