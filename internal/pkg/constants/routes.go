package constants

// Static route constants
const (
	HomeRoute    = "/"
	GalleryRoute = "/gallery"
	ContactRoute = "/contact"
	ThemeRoute   = "/theme/toggle"

	DemoImageRoute = "/gallery/demo/:id"
	S3ImageRoute   = "/gallery/s3/*"

	APIPrefix = "/api/v1"
)
