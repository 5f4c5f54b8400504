package counter

import (
	"context"
	"sort"
	"strconv"

	"github.com/FelixBrandt/Foliogram/internal/pkg/cache"
)

const photoViewsKey = "photo:counters:views"

// PhotoViews is one photo's accumulated view count.
type PhotoViews struct {
	PhotoID string `json:"photo_id"`
	Views   int64  `json:"views"`
}

// AddPhotoView increments the view counter for a photo in Redis.
func AddPhotoView(ctx context.Context, photoID string) error {
	return cache.GetClient().HIncrBy(ctx, photoViewsKey, photoID, 1).Err()
}

// Views returns the accumulated view count for one photo.
func Views(ctx context.Context, photoID string) (int64, error) {
	raw, err := cache.GetClient().HGet(ctx, photoViewsKey, photoID).Result()
	if err != nil {
		if cache.IsNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Top returns the n most viewed photos, most viewed first. Ties break on
// photo id so the order is stable.
func Top(ctx context.Context, n int) ([]PhotoViews, error) {
	data, err := cache.GetClient().HGetAll(ctx, photoViewsKey).Result()
	if err != nil {
		return nil, err
	}
	return rank(data, n), nil
}

// rank turns the raw counter hash into a ranked list. Entries that do not
// parse to a positive count are dropped; n <= 0 keeps the full list.
func rank(data map[string]string, n int) []PhotoViews {
	views := make([]PhotoViews, 0, len(data))
	for id, raw := range data {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || count <= 0 {
			continue
		}
		views = append(views, PhotoViews{PhotoID: id, Views: count})
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Views != views[j].Views {
			return views[i].Views > views[j].Views
		}
		return views[i].PhotoID < views[j].PhotoID
	})

	if n > 0 && len(views) > n {
		views = views[:n]
	}
	return views
}

// Reset drops all accumulated counters.
func Reset(ctx context.Context) error {
	return cache.GetClient().Del(ctx, photoViewsKey).Err()
}
