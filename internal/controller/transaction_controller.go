package controller

import (
	"fmt"

	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITransactionController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
	GetByWallet(ctx *fiber.Ctx) error
}

type transactionController struct {
	service service.ITransactionService
}

func NewTransactionController(service service.ITransactionService) ITransactionController {
	return &transactionController{service: service}
}

func (c *transactionController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	h := api.Group("/transactions", jwtMiddleware)
	h.Get("", c.GetByWallet)
}

// GetByWallet lists the signed-in wallet's transaction logs, newest first.
func (c *transactionController) GetByWallet(ctx *fiber.Ctx) error {
	wallet, _ := ctx.Locals(serverutils.WalletLocalKey).(string)
	if q := ctx.Query("wallet"); q != "" && q != wallet {
		return fmt.Errorf("%w: cannot read another wallet's transactions", serverutils.ErrForbidden)
	}

	res, err := c.service.ListByWallet(ctx.UserContext(), wallet, ctx.QueryInt("limit", 20), ctx.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}
