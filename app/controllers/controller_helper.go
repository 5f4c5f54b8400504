package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/FelixBrandt/Foliogram/app/models"
	"github.com/FelixBrandt/Foliogram/internal/pkg/viewmodel"
)

const themeCookie = "theme"

// currentTheme reads the persisted theme preference; light is the default.
func currentTheme(c *fiber.Ctx) string {
	if c.Cookies(themeCookie) == "dark" {
		return "dark"
	}
	return "light"
}

func newLayout(c *fiber.Ctx, page, title string) viewmodel.Layout {
	return viewmodel.Layout{
		Page:  page,
		Title: title,
		Theme: currentTheme(c),
		Msg:   flash.Get(c),
	}
}

// parseFilters builds SearchFilters from request query parameters. Unset
// parameters keep their defaults, so a bare request reproduces the default
// view.
func parseFilters(c *fiber.Ctx) models.SearchFilters {
	filters := models.DefaultSearchFilters()

	filters.SearchText = c.Query("search_text")
	if raw := c.Query("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filters.SelectedCategories = append(filters.SelectedCategories, name)
			}
		}
	}
	filters.DateRange.Start = c.Query("date_start")
	filters.DateRange.End = c.Query("date_end")
	if v := c.Query("sort_by"); v != "" {
		filters.SortBy = v
	}
	if v := c.Query("sort_order"); v != "" {
		filters.SortOrder = v
	}
	if v := c.Query("view_mode"); v != "" {
		filters.ViewMode = v
	}
	return filters
}
