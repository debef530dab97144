package controller

import (
	"github.com/gofiber/fiber/v2"

	"brightside-be/internal/dto"
	"brightside-be/internal/pkg/serverutils"
	"brightside-be/internal/service"
)

type IEQBotController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
}

type eqBotController struct {
	service service.IEQBotService
}

func NewEQBotController(service service.IEQBotService) IEQBotController {
	return &eqBotController{service: service}
}

func (c *eqBotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/eq/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/messages", c.SendMessage)
	h.Get("/sessions", c.ListSessions)
}

func (c *eqBotController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.SendEQMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *eqBotController) ListSessions(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}
