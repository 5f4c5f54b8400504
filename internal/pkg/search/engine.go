// Package search implements the gallery's client-facing filtering pipeline:
// text search, category and date-range filters, sorting and pagination over a
// flattened photo set. Apply is pure and deterministic; the same filters on
// the same input always reproduce the same view.
package search

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/FelixBrandt/Foliogram/app/models"
)

// PhotosPerPage is the fixed page size of the gallery grid.
const PhotosPerPage = 8

var nameCollator = collate.New(language.Und)

// Apply runs the filter stages in fixed order (text, category, date) and then
// sorts. Filter stages only remove, never reorder; the sort is stable so ties
// keep their pre-sort relative order.
func Apply(photos []models.Photo, filters models.SearchFilters) []models.Photo {
	filtered := make([]models.Photo, 0, len(photos))
	filtered = append(filtered, photos...)

	if filters.SearchText != "" {
		needle := strings.ToLower(filters.SearchText)
		filtered = keep(filtered, func(p models.Photo) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) ||
				strings.Contains(strings.ToLower(p.Category), needle)
		})
	}

	if len(filters.SelectedCategories) > 0 {
		selected := make(map[string]struct{}, len(filters.SelectedCategories))
		for _, name := range filters.SelectedCategories {
			selected[name] = struct{}{}
		}
		filtered = keep(filtered, func(p models.Photo) bool {
			_, ok := selected[p.Category]
			return ok
		})
	}

	if filters.DateRange.Start != "" || filters.DateRange.End != "" {
		start, hasStart := parseBoundary(filters.DateRange.Start, false)
		end, hasEnd := parseBoundary(filters.DateRange.End, true)
		filtered = keep(filtered, func(p models.Photo) bool {
			if p.CreatedTime == "" {
				return true
			}
			taken, ok := parseCreatedTime(p.CreatedTime)
			if !ok {
				return true
			}
			if hasStart && taken.Before(start) {
				return false
			}
			if hasEnd && taken.After(end) {
				return false
			}
			return true
		})
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compare(filtered[i], filtered[j], filters.SortBy)
		if filters.SortOrder == models.SortOrderDesc {
			cmp = -cmp
		}
		return cmp < 0
	})

	return filtered
}

// Visible returns the page-limited subset: the whole list when showAll is set
// or the list fits in one page, otherwise the first page.
func Visible(filtered []models.Photo, showAll bool) []models.Photo {
	if showAll || len(filtered) <= PhotosPerPage {
		return filtered
	}
	return filtered[:PhotosPerPage]
}

// Categories returns the distinct category names present in the unfiltered
// input, sorted lexicographically. It depends only on the photo set, never on
// active filters.
func Categories(photos []models.Photo) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range photos {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		names = append(names, p.Category)
	}
	sort.Strings(names)
	return names
}

// Stats summarizes one evaluated view for display next to the grid.
type Stats struct {
	TotalPhotos     int  `json:"total_photos"`
	FilteredPhotos  int  `json:"filtered_photos"`
	DisplayedPhotos int  `json:"displayed_photos"`
	Categories      int  `json:"categories"`
	HasMore         bool `json:"has_more"`
	ShowingAll      bool `json:"showing_all"`
}

// BuildStats derives the view summary from the full, filtered and visible
// photo sets.
func BuildStats(all, filtered, visible []models.Photo, categories []string, showAll bool) Stats {
	return Stats{
		TotalPhotos:     len(all),
		FilteredPhotos:  len(filtered),
		DisplayedPhotos: len(visible),
		Categories:      len(categories),
		HasMore:         len(filtered) > PhotosPerPage,
		ShowingAll:      showAll,
	}
}

func keep(photos []models.Photo, pred func(models.Photo) bool) []models.Photo {
	kept := photos[:0]
	for _, p := range photos {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func compare(a, b models.Photo, sortBy string) int {
	switch sortBy {
	case models.SortByName:
		return nameCollator.CompareString(a.Name, b.Name)
	case models.SortBySize:
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	default: // date
		ta := sortTime(a.CreatedTime)
		tb := sortTime(b.CreatedTime)
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		}
		return 0
	}
}

// sortTime parses a photo timestamp for the date comparator. Missing or
// unparseable values sort as the epoch.
func sortTime(createdTime string) time.Time {
	if t, ok := parseCreatedTime(createdTime); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

func parseCreatedTime(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseBoundary parses one date-range boundary. The end boundary extends to
// the last instant of its calendar day.
func parseBoundary(value string, isEnd bool) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	if isEnd {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, true
}
