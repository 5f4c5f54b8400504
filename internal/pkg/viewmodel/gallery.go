package viewmodel

import (
	"fmt"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/search"
)

// Gallery carries everything the gallery page template renders.
type Gallery struct {
	Layout     Layout
	Source     string // live or demo
	Categories []models.Category
	// Names of all categories present, for the filter dropdown.
	CategoryNames []string
	Filters       models.SearchFilters
	Photos        []models.Photo // visible page of the filtered set
	Stats         search.Stats
	ShowAll       bool
}

// FormatFileSize renders a byte count for the metadata panel. Zero means the
// size is unknown.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "Unknown size"
	}
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGT"[exp])
}
