package controller

import (
	"errors"

	"leafit-be/internal/dto"
	"leafit-be/internal/pkg/serverutils"
	"leafit-be/internal/service"
	"leafit-be/pkg/token"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UserStats(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
	issuer  *token.Issuer
}

func NewActivityController(svc service.IActivityService, issuer *token.Issuer) IActivityController {
	return &activityController{service: svc, issuer: issuer}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	auth := serverutils.JwtMiddleware(c.issuer)

	h := r.Group("/activities", auth)
	h.Get("/", c.List)
	h.Post("/", c.Create)

	r.Get("/user/stats", auth, c.UserStats)
}

func (c *activityController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	var req dto.CreateActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return serverutils.Unauthenticated(ctx)
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"activity":   res.Activity,
		"user_stats": res.UserStats,
	})
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.List(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success":    true,
		"activities": res.Activities,
		"total":      res.Total,
	})
}

func (c *activityController) UserStats(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	res, err := c.service.UserStats(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return serverutils.Unauthenticated(ctx)
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success":            true,
		"stats":              res.Stats,
		"category_breakdown": res.CategoryBreakdown,
		"recent_activities":  res.RecentActivities,
	})
}
