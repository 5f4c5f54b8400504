package imageproxy

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	// Register Nikon and Canon maker notes
	exif.RegisterParsers(mknote.All...)
}

// Meta is the EXIF subset shown in the viewer's metadata panel.
type Meta struct {
	CameraModel  string  `json:"camera_model,omitempty"`
	TakenAt      string  `json:"taken_at,omitempty"`
	ExposureTime string  `json:"exposure_time,omitempty"`
	Aperture     string  `json:"aperture,omitempty"`
	ISO          int     `json:"iso,omitempty"`
	FocalLength  string  `json:"focal_length,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// DemoMeta reads EXIF metadata from a bundled demo photo. Photos without a
// backing file, or files without EXIF data, yield an empty Meta; that is not
// an error.
func (p *Proxy) DemoMeta(id string) Meta {
	f, err := os.Open(p.demoFile(id))
	if err != nil {
		return Meta{}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return Meta{}
	}

	var meta Meta
	if m, err := x.Get(exif.Model); err == nil {
		meta.CameraModel = strings.TrimSpace(strings.Trim(m.String(), `"`))
	}
	if dt, err := x.DateTime(); err == nil {
		meta.TakenAt = dt.Format(time.RFC3339)
	}
	if lat, long, err := x.LatLong(); err == nil {
		meta.Latitude = lat
		meta.Longitude = long
	}
	if expTag, err := x.Get(exif.ExposureTime); err == nil {
		meta.ExposureTime = strings.Trim(expTag.String(), `"`)
	}
	if fTag, err := x.Get(exif.FNumber); err == nil {
		if floatVal, err := fTag.Float(0); err == nil {
			meta.Aperture = fmt.Sprintf("f/%.1f", floatVal)
		}
	}
	if isoTag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if isoVal, err := isoTag.Int(0); err == nil {
			meta.ISO = isoVal
		}
	}
	if flTag, err := x.Get(exif.FocalLength); err == nil {
		if floatVal, err := flTag.Float(0); err == nil {
			meta.FocalLength = fmt.Sprintf("%.0fmm", floatVal)
		}
	}
	return meta
}
