package controller

import (
	"fmt"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	GetFeatured(ctx *fiber.Ctx) error
	RequestFeature(ctx *fiber.Ctx) error
}

type featureController struct {
	service service.IFeatureService
}

func NewFeatureController(service service.IFeatureService) IFeatureController {
	return &featureController{service: service}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/nft")
	h.Get("/feature", c.GetFeatured)
	h.Post("/feature", c.RequestFeature)
}

func (c *featureController) GetFeatured(ctx *fiber.Ctx) error {
	res, err := c.service.GetRandomFeatured(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *featureController) RequestFeature(ctx *fiber.Ctx) error {
	var req dto.FeatureNFTRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", serverutils.ErrBadRequest, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RequestFeature(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(res)
}
