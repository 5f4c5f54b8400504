package viewmodel

import "github.com/gofiber/fiber/v2"

type Layout struct {
	Page    string
	Title   string
	Theme   string // light or dark
	IsError bool
	Msg     fiber.Map
}
