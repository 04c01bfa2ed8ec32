package controller

import (
	"errors"

	"smart-menu-be/internal/pkg/serverutils"
	"smart-menu-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMenuController interface {
	RegisterRoutes(r fiber.Router)
	GetMenu(ctx *fiber.Ctx) error
	GetProduct(ctx *fiber.Ctx) error
	TestMenu(ctx *fiber.Ctx) error
}

type menuController struct {
	service service.IMenuService
}

func NewMenuController(service service.IMenuService) IMenuController {
	return &menuController{service: service}
}

func (c *menuController) RegisterRoutes(r fiber.Router) {
	r.Get("/menu", c.GetMenu)
	r.Get("/product/:id", c.GetProduct)
	r.Get("/test-menu", c.TestMenu)
}

func (c *menuController) GetMenu(ctx *fiber.Ctx) error {
	menu, err := c.service.GetMenu()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(menu)
}

func (c *menuController) GetProduct(ctx *fiber.Ctx) error {
	product, err := c.service.GetProduct(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(product)
}

func (c *menuController) TestMenu(ctx *fiber.Ctx) error {
	res, err := c.service.TestMenu(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return ctx.JSON(res)
}
