package controller

import (
	"fmt"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Csrf(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("/csrf", c.Csrf)
	h.Post("/verify", c.Verify)
}

func (c *authController) Csrf(ctx *fiber.Ctx) error {
	wallet := ctx.Query("wallet")
	if wallet == "" {
		return fmt.Errorf("%w: wallet query parameter is required", serverutils.ErrBadRequest)
	}

	res, err := c.service.IssueNonce(ctx.UserContext(), wallet)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Verify(ctx *fiber.Ctx) error {
	var req dto.VerifySignatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", serverutils.ErrBadRequest, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Verify(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
