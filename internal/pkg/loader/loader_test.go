package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelixBrandt/Foliogram/app/models"
)

type fakeFetcher struct {
	mu      sync.Mutex
	errs    map[string]error
	release map[string]chan struct{}
	fetched []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		errs:    make(map[string]error),
		release: make(map[string]chan struct{}),
	}
}

func (f *fakeFetcher) block(url string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.release[url] = ch
	return ch
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) error {
	f.mu.Lock()
	gate := f.release[url]
	f.fetched = append(f.fetched, url)
	err := f.errs[url]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func testPhoto(id string) models.Photo {
	return models.Photo{
		ID:             id,
		Name:           id + ".jpg",
		ThumbnailURL:   "https://img.test/" + id + "/thumb",
		MediumURL:      "https://img.test/" + id + "/medium",
		HighQualityURL: "https://img.test/" + id + "/high",
		OriginalURL:    "https://img.test/" + id + "/original",
	}
}

func TestSlotShowsThumbnailImmediately(t *testing.T) {
	t.Parallel()

	slot := NewSlot(newFakeFetcher(), testPhoto("p1"))

	snap := slot.Snapshot()
	assert.Equal(t, "https://img.test/p1/thumb", snap.Displayed)
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, []string{"thumbnail"}, snap.Loaded)
}

func TestSlotRequest(t *testing.T) {
	t.Parallel()

	t.Run("higher quality swaps in after the probe", func(t *testing.T) {
		fetcher := newFakeFetcher()
		slot := NewSlot(fetcher, testPhoto("p1"))

		slot.Request(context.Background(), models.QualityMedium)

		require.Eventually(t, func() bool {
			return slot.Snapshot().State == "loaded"
		}, time.Second, 5*time.Millisecond)

		snap := slot.Snapshot()
		assert.Equal(t, "https://img.test/p1/medium", snap.Displayed)
		assert.Equal(t, []string{"medium", "thumbnail"}, snap.Loaded)
	})

	t.Run("loaded qualities accumulate and switch instantly", func(t *testing.T) {
		fetcher := newFakeFetcher()
		slot := NewSlot(fetcher, testPhoto("p1"))

		slot.Request(context.Background(), models.QualityMedium)
		require.Eventually(t, func() bool {
			return slot.Snapshot().State == "loaded"
		}, time.Second, 5*time.Millisecond)

		fetchedBefore := len(fetcher.fetched)

		// Back to thumbnail and again to medium: both are instant.
		slot.Request(context.Background(), models.QualityThumbnail)
		assert.Equal(t, "loaded", slot.Snapshot().State)
		slot.Request(context.Background(), models.QualityMedium)
		assert.Equal(t, "https://img.test/p1/medium", slot.Snapshot().Displayed)

		fetcher.mu.Lock()
		defer fetcher.mu.Unlock()
		assert.Len(t, fetcher.fetched, fetchedBefore)
	})

	t.Run("a failed probe keeps the last displayed source", func(t *testing.T) {
		fetcher := newFakeFetcher()
		fetcher.errs["https://img.test/p1/high"] = errors.New("gone")
		slot := NewSlot(fetcher, testPhoto("p1"))

		slot.Request(context.Background(), models.QualityHigh)

		require.Eventually(t, func() bool {
			return slot.Snapshot().State == "errored"
		}, time.Second, 5*time.Millisecond)

		snap := slot.Snapshot()
		assert.Equal(t, "https://img.test/p1/thumb", snap.Displayed)
		assert.Equal(t, []string{"thumbnail"}, snap.Loaded)
	})

	t.Run("a stale completion never overwrites newer state", func(t *testing.T) {
		fetcher := newFakeFetcher()
		gate := fetcher.block("https://img.test/p1/high")
		slot := NewSlot(fetcher, testPhoto("p1"))

		slot.Request(context.Background(), models.QualityHigh)
		require.Eventually(t, func() bool {
			return slot.Snapshot().State == "loading"
		}, time.Second, 5*time.Millisecond)

		// Switch photos while the probe hangs, then let it finish.
		slot.SetPhoto(testPhoto("p2"))
		close(gate)

		assert.Never(t, func() bool {
			snap := slot.Snapshot()
			return snap.Displayed == "https://img.test/p1/high"
		}, 100*time.Millisecond, 10*time.Millisecond)

		snap := slot.Snapshot()
		assert.Equal(t, "p2", snap.PhotoID)
		assert.Equal(t, "https://img.test/p2/thumb", snap.Displayed)
	})
}

func TestSetPhotoResetsState(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	slot := NewSlot(fetcher, testPhoto("p1"))
	slot.Request(context.Background(), models.QualityMedium)
	require.Eventually(t, func() bool {
		return slot.Snapshot().State == "loaded"
	}, time.Second, 5*time.Millisecond)

	slot.SetPhoto(testPhoto("p2"))

	snap := slot.Snapshot()
	assert.Equal(t, "p2", snap.PhotoID)
	assert.Equal(t, "thumbnail", snap.Quality)
	assert.Equal(t, []string{"thumbnail"}, snap.Loaded)
}

func TestHTTPFetcher(t *testing.T) {
	t.Parallel()

	t.Run("relative URLs resolve without a request", func(t *testing.T) {
		f := NewHTTPFetcher()
		f.Client = nil // would panic if a request were made

		assert.NoError(t, f.Fetch(context.Background(), "/gallery/demo/x"))
	})

	t.Run("falls back to GET when HEAD is rejected", func(t *testing.T) {
		var methods []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method)
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		f := NewHTTPFetcher()
		require.NoError(t, f.Fetch(context.Background(), srv.URL))
		assert.Equal(t, []string{http.MethodHead, http.MethodGet}, methods)
	})

	t.Run("client errors propagate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := NewHTTPFetcher()
		err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
