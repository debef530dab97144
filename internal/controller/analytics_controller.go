package controller

import (
	"github.com/gofiber/fiber/v2"

	"brightside-be/internal/pkg/serverutils"
	"brightside-be/internal/service"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	EmotionalAverages(ctx *fiber.Ctx) error
	DebateAverages(ctx *fiber.Ctx) error
	EmotionalTrend(ctx *fiber.Ctx) error
	DebateTrend(ctx *fiber.Ctx) error
	RealTime(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/emotional-averages", c.EmotionalAverages)
	h.Get("/debate-averages", c.DebateAverages)
	h.Get("/emotional-trend", c.EmotionalTrend)
	h.Get("/debate-trend", c.DebateTrend)
	h.Get("/realtime", c.RealTime)
}

// days defaults to the service's 30-day window when the query param is
// absent or invalid.
func daysParam(ctx *fiber.Ctx) int {
	return ctx.QueryInt("days", service.DefaultWindowDays)
}

func (c *analyticsController) EmotionalAverages(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.EmotionalAverages(ctx.Context(), userId, daysParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get emotional averages", res))
}

func (c *analyticsController) DebateAverages(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DebateAverages(ctx.Context(), userId, daysParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get debate averages", res))
}

func (c *analyticsController) EmotionalTrend(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AnalyzeEmotionalTrend(ctx.Context(), userId, daysParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get emotional trend", res))
}

func (c *analyticsController) DebateTrend(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AnalyzeDebateTrend(ctx.Context(), userId, daysParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get debate trend", res))
}

func (c *analyticsController) RealTime(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.RealTimeMetrics(ctx.Context(), userId, daysParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get realtime metrics", res))
}
