package controller

import (
	"github.com/gofiber/fiber/v2"

	"brightside-be/internal/dto"
	"brightside-be/internal/pkg/serverutils"
	"brightside-be/internal/service"
)

type IDebateController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	CreateTopic(ctx *fiber.Ctx) error
	ListTopics(ctx *fiber.Ctx) error
}

type debateController struct {
	service service.IDebateService
}

func NewDebateController(service service.IDebateService) IDebateController {
	return &debateController{service: service}
}

func (c *debateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/debate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/messages", c.SendMessage)
	h.Get("/sessions", c.ListSessions)
	h.Get("/topics", c.ListTopics)
	h.Post("/topics", c.CreateTopic)
}

func (c *debateController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.SendDebateMessageRequest
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

func (c *debateController) ListSessions(ctx *fiber.Ctx) error {
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

func (c *debateController) CreateTopic(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTopic(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create topic", res))
}

func (c *debateController) ListTopics(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListTopics(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}
