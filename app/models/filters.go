package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	SortByDate = "date"
	SortByName = "name"
	SortBySize = "size"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	ViewModeGrid = "grid"
	ViewModeList = "list"
)

// DateRange is an inclusive date window. Empty boundaries are unbounded on
// that side. Values are calendar dates in YYYY-MM-DD form; the end boundary
// covers the whole end day.
type DateRange struct {
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" validate:"omitempty,datetime=2006-01-02"`
}

// SearchFilters fully describes one gallery view. Applying the same filters
// to the same photo set always reproduces the same result; no hidden state
// participates in filtering.
type SearchFilters struct {
	SearchText         string    `json:"search_text"`
	SelectedCategories []string  `json:"selected_categories"`
	DateRange          DateRange `json:"date_range"`
	SortBy             string    `json:"sort_by" validate:"oneof=date name size"`
	SortOrder          string    `json:"sort_order" validate:"oneof=asc desc"`
	ViewMode           string    `json:"view_mode" validate:"oneof=grid list"`
}

// DefaultSearchFilters returns the view every gallery visit starts from:
// everything visible, newest first, grid layout.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		SortBy:    SortByDate,
		SortOrder: SortOrderDesc,
		ViewMode:  ViewModeGrid,
	}
}

func (f *SearchFilters) Validate() error {
	v := validator.New()

	return v.Struct(f)
}
