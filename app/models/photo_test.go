package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FelixBrandt/Foliogram/app/models"
)

func TestParseImageQuality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.QualityThumbnail, models.ParseImageQuality("thumbnail"))
	assert.Equal(t, models.QualityOriginal, models.ParseImageQuality("original"))

	// Unknown values fall back to the default display quality.
	assert.Equal(t, models.QualityMedium, models.ParseImageQuality(""))
	assert.Equal(t, models.QualityMedium, models.ParseImageQuality("ultra"))
}

func TestPhotoImageURL(t *testing.T) {
	t.Parallel()

	photo := models.Photo{
		ThumbnailURL:   "t",
		MediumURL:      "m",
		HighQualityURL: "h",
		OriginalURL:    "o",
	}

	assert.Equal(t, "t", photo.ImageURL(models.QualityThumbnail))
	assert.Equal(t, "m", photo.ImageURL(models.QualityMedium))
	assert.Equal(t, "h", photo.ImageURL(models.QualityHigh))
	assert.Equal(t, "o", photo.ImageURL(models.QualityOriginal))
	assert.Equal(t, "m", photo.ImageURL(models.ImageQuality("bogus")))
}
