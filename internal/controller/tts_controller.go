package controller

import (
	"smart-menu-be/internal/dto"
	"smart-menu-be/internal/pkg/serverutils"
	"smart-menu-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITTSController interface {
	RegisterRoutes(r fiber.Router)
	Synthesize(ctx *fiber.Ctx) error
}

type ttsController struct {
	service service.ITTSService
}

func NewTTSController(service service.ITTSService) ITTSController {
	return &ttsController{service: service}
}

func (c *ttsController) RegisterRoutes(r fiber.Router) {
	r.Post("/tts", c.Synthesize)
}

func (c *ttsController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.TTSRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "text is required"))
	}

	res, err := c.service.Synthesize(ctx.Context(), req.Text)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "failed to generate speech"))
	}
	return ctx.JSON(res)
}
