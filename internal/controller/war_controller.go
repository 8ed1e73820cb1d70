package controller

import (
	"fmt"
	"strings"

	"rude-dashboard-be/internal/dto"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWarController interface {
	RegisterRoutes(r fiber.Router)
	Preflight(ctx *fiber.Ctx) error
	GetWarriorPowers(ctx *fiber.Ctx) error
}

type warController struct {
	service        service.IWarService
	allowedOrigins map[string]struct{}
	allowAll       bool
}

// NewWarController takes the same comma-separated origin list the CORS
// middleware is configured with.
func NewWarController(service service.IWarService, allowedOrigins string) IWarController {
	c := &warController{
		service:        service,
		allowedOrigins: make(map[string]struct{}),
	}
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			c.allowAll = true
		default:
			c.allowedOrigins[o] = struct{}{}
		}
	}
	return c
}

func (c *warController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/war")
	h.Options("/getWarriorPowers", c.Preflight)
	h.Post("/getWarriorPowers", c.GetWarriorPowers)
}

// Preflight answers browsers that skip the CORS middleware's own preflight
// detection (no Access-Control-Request-Method header).
// Unlisted origins get the 204 without an Allow-Origin header.
func (c *warController) Preflight(ctx *fiber.Ctx) error {
	origin := ctx.Get(fiber.HeaderOrigin)
	if c.originAllowed(origin) {
		ctx.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		ctx.Set(fiber.HeaderVary, fiber.HeaderOrigin)
	}
	ctx.Set(fiber.HeaderAccessControlAllowMethods, "POST,OPTIONS")
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *warController) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	if c.allowAll {
		return true
	}
	_, ok := c.allowedOrigins[origin]
	return ok
}

func (c *warController) GetWarriorPowers(ctx *fiber.Ctx) error {
	var req dto.WarriorPowersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", serverutils.ErrBadRequest, err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	total, err := c.service.GetWarriorsPower(ctx.UserContext(), req.WarriorList)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.WarriorPowersResponse{TotalPower: total})
}
