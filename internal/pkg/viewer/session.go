// Package viewer holds the state machine behind the full-screen photo modal:
// zoom, pan, rotation, flips, slideshow, metadata panel and keyboard-driven
// transitions over the currently filtered photo collection.
package viewer

import (
	"context"
	"sync"
	"time"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/loader"
)

const (
	ZoomMin  = 0.5
	ZoomMax  = 5.0
	ZoomStep = 1.5

	// SlideshowInterval is the auto-advance period while a slideshow runs.
	SlideshowInterval = 3 * time.Second
)

// State is a consistent snapshot of an open (or closed) viewer session.
type State struct {
	Open            bool            `json:"open"`
	Index           int             `json:"index"`
	Count           int             `json:"count"`
	Photo           *models.Photo   `json:"photo,omitempty"`
	Zoom            float64         `json:"zoom"`
	PanX            float64         `json:"pan_x"`
	PanY            float64         `json:"pan_y"`
	Rotation        int             `json:"rotation"`
	FlippedH        bool            `json:"flipped_h"`
	FlippedV        bool            `json:"flipped_v"`
	Quality         string          `json:"quality"`
	Slideshow       bool            `json:"slideshow"`
	MetadataVisible bool            `json:"metadata_visible"`
	Fullscreen      bool            `json:"fullscreen"`
	Image           loader.Snapshot `json:"image"`
}

// Session manages one viewer modal. All transitions are serialized through
// its mutex; the slideshow ticker goroutine goes through the same public
// transitions as keyboard input does.
type Session struct {
	mu      sync.Mutex
	fetcher loader.Fetcher

	photos []models.Photo
	index  int
	open   bool

	zoom            float64
	panX, panY      float64
	rotation        int
	flipH, flipV    bool
	quality         models.ImageQuality
	slideshow       bool
	slideshowStop   chan struct{}
	metadataVisible bool
	fullscreen      bool

	slot *loader.Slot
}

func NewSession(fetcher loader.Fetcher) *Session {
	return &Session{fetcher: fetcher}
}

// Open enters the modal on the given index of the filtered collection.
// Visual state always starts from the defaults, regardless of any prior
// session.
func (s *Session) Open(photos []models.Photo, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(photos) == 0 || index < 0 || index >= len(photos) {
		return false
	}

	s.stopSlideshowLocked()
	s.photos = photos
	s.index = index
	s.open = true
	s.metadataVisible = false
	s.fullscreen = false
	s.resetPhotoStateLocked()
	return true
}

// Close leaves the modal. The slideshow ticker, if any, is torn down as part
// of this transition.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *Session) closeLocked() {
	if !s.open {
		return
	}
	s.stopSlideshowLocked()
	if s.slot != nil {
		s.slot.Close()
		s.slot = nil
	}
	s.open = false
	s.photos = nil
	s.index = 0
}

// Next advances to the following photo, wrapping around at the end of the
// collection. Per-photo visual state resets as on entry.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || len(s.photos) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.photos)
	s.resetPhotoStateLocked()
}

// Previous retreats with wraparound, resetting per-photo visual state.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || len(s.photos) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.photos)) % len(s.photos)
	s.resetPhotoStateLocked()
}

// ZoomIn multiplies the zoom by the step, capped at ZoomMax. Past 2x the
// original quality tier is forced, since zooming implies full resolution.
func (s *Session) ZoomIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.zoom = min(s.zoom*ZoomStep, ZoomMax)
	if s.zoom > 2 && s.quality != models.QualityOriginal {
		s.requestQualityLocked(models.QualityOriginal)
	}
}

// ZoomOut divides the zoom by the step, floored at ZoomMin. At or below 1x
// the pan resets and quality drops back to medium.
func (s *Session) ZoomOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.zoom = max(s.zoom/ZoomStep, ZoomMin)
	if s.zoom <= 1 {
		s.panX, s.panY = 0, 0
		s.requestQualityLocked(models.QualityMedium)
	}
}

// SetPan records the pointer displacement since drag start. Panning is only
// permitted while zoomed in; the offset is not clamped against image edges.
func (s *Session) SetPan(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || s.zoom <= 1 {
		return
	}
	s.panX, s.panY = x, y
}

// Rotate turns the image another quarter turn clockwise.
func (s *Session) Rotate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.rotation = (s.rotation + 90) % 360
}

func (s *Session) FlipHorizontal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.flipH = !s.flipH
}

func (s *Session) FlipVertical() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.flipV = !s.flipV
}

// ToggleSlideshow starts or stops the auto-advance ticker. A collection of
// one photo or less has nothing to advance to, so no ticker is started.
func (s *Session) ToggleSlideshow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	if s.slideshow {
		s.stopSlideshowLocked()
		return
	}
	if len(s.photos) <= 1 {
		return
	}
	s.slideshow = true
	stop := make(chan struct{})
	s.slideshowStop = stop
	go func() {
		ticker := time.NewTicker(SlideshowInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Next()
			}
		}
	}()
}

func (s *Session) ToggleMetadata() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.metadataVisible = !s.metadataVisible
}

func (s *Session) ToggleFullscreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.fullscreen = !s.fullscreen
}

// SetCollection swaps the active filtered collection while the modal is open.
// The open photo is pinned by id: if it is still present the index follows it
// to its new position, otherwise the session closes.
func (s *Session) SetCollection(photos []models.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}

	currentID := s.photos[s.index].ID
	for i, p := range photos {
		if p.ID == currentID {
			s.photos = photos
			s.index = i
			if len(photos) <= 1 {
				s.stopSlideshowLocked()
			}
			return
		}
	}
	s.closeLocked()
}

// RequestQuality switches the displayed quality tier explicitly.
func (s *Session) RequestQuality(quality models.ImageQuality) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.requestQualityLocked(quality)
}

// State returns a snapshot for rendering.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Open:            s.open,
		Index:           s.index,
		Count:           len(s.photos),
		Zoom:            s.zoom,
		PanX:            s.panX,
		PanY:            s.panY,
		Rotation:        s.rotation,
		FlippedH:        s.flipH,
		FlippedV:        s.flipV,
		Quality:         string(s.quality),
		Slideshow:       s.slideshow,
		MetadataVisible: s.metadataVisible,
		Fullscreen:      s.fullscreen,
	}
	if s.open {
		photo := s.photos[s.index]
		st.Photo = &photo
	}
	if s.slot != nil {
		st.Image = s.slot.Snapshot()
	}
	return st
}

// resetPhotoStateLocked applies the per-photo defaults used both on entry
// and whenever the open index changes.
func (s *Session) resetPhotoStateLocked() {
	s.zoom = 1
	s.panX, s.panY = 0, 0
	s.rotation = 0
	s.flipH, s.flipV = false, false
	s.quality = models.QualityMedium

	photo := s.photos[s.index]
	if s.slot == nil {
		s.slot = loader.NewSlot(s.fetcher, photo)
	} else {
		s.slot.SetPhoto(photo)
	}
	s.slot.Request(context.Background(), models.QualityMedium)
}

func (s *Session) requestQualityLocked(quality models.ImageQuality) {
	s.quality = quality
	if s.slot != nil {
		s.slot.Request(context.Background(), quality)
	}
}

func (s *Session) stopSlideshowLocked() {
	if s.slideshowStop != nil {
		close(s.slideshowStop)
		s.slideshowStop = nil
	}
	s.slideshow = false
}
