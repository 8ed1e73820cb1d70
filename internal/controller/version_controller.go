package controller

import (
	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVersionController interface {
	RegisterRoutes(r fiber.Router)
	GetVersion(ctx *fiber.Ctx) error
}

type versionController struct {
	service service.IVersionService
}

func NewVersionController(service service.IVersionService) IVersionController {
	return &versionController{service: service}
}

func (c *versionController) RegisterRoutes(r fiber.Router) {
	r.Get("/version", c.GetVersion)
}

func (c *versionController) GetVersion(ctx *fiber.Ctx) error {
	version, err := c.service.GetVersion()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorBody{Error: err.Error()})
	}
	return ctx.JSON(dto.VersionResponse{Version: version})
}
