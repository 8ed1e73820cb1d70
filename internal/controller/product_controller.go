package controller

import (
	"fmt"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	GetProducts(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IConfigurationService
}

func NewProductController(service service.IConfigurationService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	r.Get("/products", c.GetProducts)
}

func (c *productController) GetProducts(ctx *fiber.Ctx) error {
	productType, ok := entity.ParseProductType(ctx.Query("type"))
	if !ok {
		return fmt.Errorf("%w: type must be NFT_UPGRADE or NFT_FEATURE", serverutils.ErrBadRequest)
	}

	res := c.service.ListProducts(ctx.UserContext(), productType, ctx.Query("collection"))
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}
