package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FelixBrandt/Foliogram/internal/pkg/portfolio"
	"github.com/FelixBrandt/Foliogram/internal/pkg/utils"
)

var siteContent portfolio.Content

// InitializeMainController installs the static site content rendered by the
// biographical sections.
func InitializeMainController(content portfolio.Content) {
	siteContent = content
}

// HandleHome renders the landing page with all static sections.
func HandleHome(c *fiber.Ctx) error {
	category := c.Query("project_category", "all")

	return c.Render("index", fiber.Map{
		"Layout":          newLayout(c, "home", "Portfolio"),
		"About":           siteContent.About,
		"Avatar":          utils.GetGravatarURL(siteContent.About.Email, 240),
		"Skills":          siteContent.Skills,
		"Projects":        portfolio.FilterProjects(siteContent.Projects, category),
		"ProjectCategory": category,
		"Experience":      siteContent.Experience,
	}, "layouts/main")
}
