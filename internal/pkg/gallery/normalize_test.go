package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("derives drive URLs for all quality tiers", func(t *testing.T) {
		photo := Normalize(File{
			ID:          "f1",
			Name:        "Sunset.jpg",
			MimeType:    "image/jpeg",
			CreatedTime: "2024-08-20T18:45:00Z",
			Size:        "3024000",
		}, "Vacation")

		assert.Equal(t, "https://drive.google.com/thumbnail?id=f1&sz=w300-h300", photo.ThumbnailURL)
		assert.Equal(t, "https://drive.google.com/thumbnail?id=f1&sz=w800-h600", photo.MediumURL)
		assert.Equal(t, "https://drive.google.com/thumbnail?id=f1&sz=w1920-h1080", photo.HighQualityURL)
		assert.Equal(t, "https://drive.google.com/uc?id=f1", photo.OriginalURL)
		assert.Equal(t, photo.MediumURL, photo.URL)
		assert.Equal(t, "Vacation", photo.Category)
		assert.Equal(t, int64(3024000), photo.Size)
	})

	t.Run("base URL override replaces drive endpoints", func(t *testing.T) {
		photo := Normalize(File{ID: "k1", Name: "a.jpg", BaseURL: "/gallery/s3/a.jpg"}, "S3")

		assert.Equal(t, "/gallery/s3/a.jpg?sz=w300-h300", photo.ThumbnailURL)
		assert.Equal(t, "/gallery/s3/a.jpg?sz=w800-h600", photo.MediumURL)
		assert.Equal(t, "/gallery/s3/a.jpg?sz=w1920-h1080", photo.HighQualityURL)
		assert.Equal(t, "/gallery/s3/a.jpg", photo.OriginalURL)
	})

	t.Run("download URL prefers the content link", func(t *testing.T) {
		photo := Normalize(File{ID: "f1", WebContentLink: "https://example.com/dl"}, "c")
		assert.Equal(t, "https://example.com/dl", photo.DownloadURL)

		photo = Normalize(File{ID: "f1"}, "c")
		assert.Equal(t, photo.OriginalURL, photo.DownloadURL)
	})

	t.Run("absent fields degrade to defaults", func(t *testing.T) {
		photo := Normalize(File{ID: "f1", Name: "x.jpg"}, "Album")

		assert.Zero(t, photo.Size)
		assert.Equal(t, "x.jpg - Album", photo.Description)
	})

	t.Run("unparseable or negative sizes become zero", func(t *testing.T) {
		assert.Zero(t, Normalize(File{ID: "a", Size: "lots"}, "c").Size)
		assert.Zero(t, Normalize(File{ID: "a", Size: "-5"}, "c").Size)
	})
}

func TestDemoCategories(t *testing.T) {
	t.Parallel()

	categories := DemoCategories()
	assert.Len(t, categories, 3)

	total := 0
	for _, category := range categories {
		assert.True(t, category.IsExpanded)
		assert.Empty(t, category.Error)
		total += len(category.Photos)
		for _, photo := range category.Photos {
			assert.Equal(t, category.Name, photo.Category)
			assert.Contains(t, photo.ThumbnailURL, "/gallery/demo/"+photo.ID)
			assert.NotEmpty(t, photo.CreatedTime)
		}
	}
	assert.Equal(t, 5, total)
}
