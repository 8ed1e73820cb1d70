package controller

import (
	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPatoController interface {
	RegisterRoutes(r fiber.Router)
	Fix(ctx *fiber.Ctx) error
}

type patoController struct {
	service service.IPatoService
}

func NewPatoController(service service.IPatoService) IPatoController {
	return &patoController{service: service}
}

func (c *patoController) RegisterRoutes(r fiber.Router) {
	r.Post("/pato/fix", c.Fix)
}

func (c *patoController) Fix(ctx *fiber.Ctx) error {
	if err := c.service.GetAndUpdatePatoArmor(ctx.UserContext()); err != nil {
		return err
	}
	return ctx.JSON(dto.PatoFixResponse{Msg: "fixed"})
}
