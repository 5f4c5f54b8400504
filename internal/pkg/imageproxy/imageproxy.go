// Package imageproxy serves image bytes for photos that are not hosted on
// the Drive endpoints: the bundled demo dataset and objects from the
// optional S3 source. Requests carry the same sz=wNNN-hNNN box parameter the
// Drive thumbnail endpoint uses.
package imageproxy

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var boxPattern = regexp.MustCompile(`^w(\d+)-h(\d+)$`)

// ParseBox parses a size parameter like "w300-h300" into its pixel bounds.
func ParseBox(sz string) (int, int, error) {
	m := boxPattern.FindStringSubmatch(sz)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid size parameter %q", sz)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("invalid size parameter %q", sz)
	}
	return w, h, nil
}

// ObjectStore streams raw object bytes for proxied S3 photos.
type ObjectStore interface {
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
}

// Proxy resolves demo and S3 photo ids to image bytes, resized to the
// requested box.
type Proxy struct {
	demoDir string
	store   ObjectStore
}

// New creates a proxy. store may be nil when no S3 source is configured.
func New(demoDir string, store ObjectStore) *Proxy {
	return &Proxy{demoDir: demoDir, store: store}
}

// HandleDemoImage serves one bundled demo photo. A missing demo file is not
// an error: a deterministic placeholder renders instead, so the demo gallery
// works from a bare checkout.
func (p *Proxy) HandleDemoImage(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "photo id missing"})
	}

	img, err := imaging.Open(p.demoFile(id))
	if err != nil {
		img = placeholder(id)
	}

	return p.render(c, img)
}

// HandleS3Image streams and resizes one object from the S3 source.
func (p *Proxy) HandleS3Image(c *fiber.Ctx) error {
	if p.store == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "no s3 source configured"})
	}

	key, err := url.PathUnescape(c.Params("*"))
	if err != nil || key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "object key missing"})
	}

	body, err := p.store.GetObject(c.Context(), key)
	if err != nil {
		log.Errorf("failed to fetch object %s: %v", key, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "image not found"})
	}
	defer body.Close()

	img, err := imaging.Decode(body)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "decode_failed", "message": "object is not a decodable image"})
	}

	return p.render(c, img)
}

func (p *Proxy) demoFile(id string) string {
	// Ids come from route params; keep them inside the demo directory.
	return filepath.Join(p.demoDir, filepath.Base(id)+".jpg")
}

// render fits the image into the requested box (when one is given) and
// encodes it as JPEG.
func (p *Proxy) render(c *fiber.Ctx, img image.Image) error {
	if sz := c.Query("sz"); sz != "" {
		w, h, err := ParseBox(sz)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": err.Error()})
		}
		img = imaging.Fit(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "encode_failed", "message": "failed to encode image"})
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(buf.Bytes())
}

// placeholder produces a solid-color stand-in derived from the photo id, so
// each demo photo is visually distinct without bundling binaries.
func placeholder(id string) image.Image {
	h := fnv.New32a()
	h.Write([]byte(id))
	sum := h.Sum32()

	fill := color.NRGBA{
		R: uint8(80 + sum%120),
		G: uint8(80 + (sum>>8)%120),
		B: uint8(80 + (sum>>16)%120),
		A: 255,
	}
	return imaging.New(1200, 900, fill)
}

// DemoFileExists reports whether real bytes back a demo photo id.
func (p *Proxy) DemoFileExists(id string) bool {
	_, err := os.Stat(p.demoFile(id))
	return err == nil
}
