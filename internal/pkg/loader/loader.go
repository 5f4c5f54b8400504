// Package loader implements progressive image delivery for a single display
// slot: the thumbnail is shown immediately, higher quality tiers are probed
// in the background and swapped in only once they load. A generation counter
// guards against out-of-order completions, so a stale probe can never
// overwrite newer state.
package loader

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/FelixBrandt/Foliogram/app/models"
)

// State is the lifecycle of one photo+quality request.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}

// Fetcher probes a target URL and reports whether the image is deliverable.
type Fetcher interface {
	Fetch(ctx context.Context, url string) error
}

// HTTPFetcher probes remote URLs with a HEAD request, falling back to GET
// when the endpoint rejects HEAD. Relative URLs point at bundled assets and
// are treated as immediately available.
type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: 15 * time.Second}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, target string) error {
	if strings.HasPrefix(target, "/") {
		return nil
	}

	resp, err := f.do(ctx, http.MethodHead, target)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		resp, err = f.do(ctx, http.MethodGet, target)
		if err != nil {
			return err
		}
		resp.Body.Close()
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("image probe failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return nil
}

func (f *HTTPFetcher) do(ctx context.Context, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, err
	}
	return f.Client.Do(req)
}

// Snapshot is a consistent view of a slot for rendering.
type Snapshot struct {
	PhotoID   string   `json:"photo_id"`
	Quality   string   `json:"quality"`
	State     string   `json:"state"`
	Displayed string   `json:"displayed"`
	Loaded    []string `json:"loaded"`
}

// Slot tracks progressive loading for one displayed photo. Successfully
// loaded qualities accumulate per photo and switch instantly on re-request;
// a failed load keeps the last successfully displayed source.
type Slot struct {
	mu        sync.Mutex
	fetcher   Fetcher
	photo     models.Photo
	quality   models.ImageQuality
	displayed string
	state     State
	loaded    map[models.ImageQuality]bool
	gen       uint64
}

// NewSlot creates a slot showing the photo's thumbnail, which is assumed to
// be cheap and already available.
func NewSlot(fetcher Fetcher, photo models.Photo) *Slot {
	s := &Slot{fetcher: fetcher}
	s.reset(photo)
	return s
}

func (s *Slot) reset(photo models.Photo) {
	s.gen++ // detach any in-flight probe
	s.photo = photo
	s.quality = models.QualityThumbnail
	s.displayed = photo.ThumbnailURL
	s.state = StateIdle
	s.loaded = map[models.ImageQuality]bool{models.QualityThumbnail: true}
}

// SetPhoto points the slot at a different photo, dropping all accumulated
// state. Any in-flight probe for the previous photo is abandoned.
func (s *Slot) SetPhoto(photo models.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(photo)
}

// Request asks for a quality tier. Already-loaded tiers swap immediately
// with no loading state; anything else is probed on a background goroutine
// and applied only if no newer request superseded it in the meantime.
func (s *Slot) Request(ctx context.Context, quality models.ImageQuality) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.photo.ImageURL(quality)
	s.quality = quality

	if s.loaded[quality] || s.displayed == target {
		s.displayed = target
		s.state = StateLoaded
		return
	}

	s.gen++
	gen := s.gen
	s.state = StateLoading

	go func() {
		err := s.fetcher.Fetch(ctx, target)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return // superseded, drop the completion
		}
		if err != nil {
			s.state = StateErrored
			return
		}
		s.displayed = target
		s.loaded[quality] = true
		s.state = StateLoaded
	}()
}

// Close abandons any in-flight probe. The slot must not be used afterwards.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
}

// Snapshot returns the current display state. An errored slot with an empty
// Displayed value means nothing ever loaded and a placeholder should render.
func (s *Slot) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := make([]string, 0, len(s.loaded))
	for q := range s.loaded {
		loaded = append(loaded, string(q))
	}
	sort.Strings(loaded)

	return Snapshot{
		PhotoID:   s.photo.ID,
		Quality:   string(s.quality),
		State:     s.state.String(),
		Displayed: s.displayed,
		Loaded:    loaded,
	}
}
