package controller

import (
	"errors"

	"smart-menu-be/internal/dto"
	"smart-menu-be/internal/pkg/serverutils"
	"smart-menu-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	PlaceOrder(ctx *fiber.Ctx) error
}

type orderController struct {
	service service.IOrderService
}

func NewOrderController(service service.IOrderService) IOrderController {
	return &orderController{service: service}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	r.Post("/order", c.PlaceOrder)
}

func (c *orderController) PlaceOrder(ctx *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "productId is required"))
	}

	res, err := c.service.PlaceOrder(ctx.Context(), req.ProductId)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid product category"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "failed to process order"))
	}
	return ctx.JSON(res)
}
