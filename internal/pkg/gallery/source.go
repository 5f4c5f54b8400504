package gallery

import "context"

// File is one raw record returned by a photo source. The field set follows
// the Google Drive files API; other sources map their listings onto it.
type File struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	CreatedTime  string `json:"createdTime"`
	ModifiedTime string `json:"modifiedTime"`
	Size         string `json:"size"`

	ThumbnailLink  string `json:"thumbnailLink,omitempty"`
	WebContentLink string `json:"webContentLink,omitempty"`
	WebViewLink    string `json:"webViewLink,omitempty"`

	// BaseURL is set by sources that serve image bytes through the local
	// image proxy instead of the Drive endpoints. When present, all quality
	// tiers are derived from it.
	BaseURL string `json:"baseUrl,omitempty"`
}

// Source lists the image files of one folder, newest first.
type Source interface {
	ListImages(ctx context.Context, folderID string) ([]File, error)
}
