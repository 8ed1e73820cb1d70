package controller

import (
	"github.com/gofiber/fiber/v2"
)

type IConquestController interface {
	RegisterRoutes(r fiber.Router)
	Redirect(ctx *fiber.Ctx) error
}

type conquestController struct {
	url string
}

func NewConquestController(url string) IConquestController {
	return &conquestController{url: url}
}

func (c *conquestController) RegisterRoutes(r fiber.Router) {
	r.Get("/conquest", c.Redirect)
}

func (c *conquestController) Redirect(ctx *fiber.Ctx) error {
	return ctx.Redirect(c.url, fiber.StatusFound)
}
