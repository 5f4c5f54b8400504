package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleThemeToggle flips the persisted light/dark preference and sends the
// visitor back where they came from.
func HandleThemeToggle(c *fiber.Ctx) error {
	next := "dark"
	if currentTheme(c) == "dark" {
		next = "light"
	}

	c.Cookie(&fiber.Cookie{
		Name:     themeCookie,
		Value:    next,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HTTPOnly: false, // the page script reads it to set the root class
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	referer := c.Get(fiber.HeaderReferer)
	if referer == "" {
		referer = "/"
	}
	return c.Redirect(referer)
}
