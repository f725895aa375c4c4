package controller

import (
	"leafit-be/internal/pkg/serverutils"
	"leafit-be/internal/service"
	"leafit-be/pkg/token"

	"github.com/gofiber/fiber/v2"
)

type IBadgeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type badgeController struct {
	service service.IBadgeService
	issuer  *token.Issuer
}

func NewBadgeController(svc service.IBadgeService, issuer *token.Issuer) IBadgeController {
	return &badgeController{service: svc, issuer: issuer}
}

func (c *badgeController) RegisterRoutes(r fiber.Router) {
	r.Get("/badges", serverutils.JwtMiddleware(c.issuer), c.List)
}

func (c *badgeController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	res, err := c.service.ListForUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success":      true,
		"badges":       res.Badges,
		"earned_count": res.EarnedCount,
	})
}
