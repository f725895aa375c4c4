package controller

import (
	"leafit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeaderboardController interface {
	RegisterRoutes(r fiber.Router)
	Leaderboard(ctx *fiber.Ctx) error
	GlobalStats(ctx *fiber.Ctx) error
}

type leaderboardController struct {
	service service.ILeaderboardService
}

func NewLeaderboardController(svc service.ILeaderboardService) ILeaderboardController {
	return &leaderboardController{service: svc}
}

// Both endpoints are public, only opted-in profiles are listed.
func (c *leaderboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/leaderboard", c.Leaderboard)
	r.Get("/stats", c.GlobalStats)
}

func (c *leaderboardController) Leaderboard(ctx *fiber.Ctx) error {
	sortKey := ctx.Query("sort")
	limit := ctx.QueryInt("limit", 0)

	res, err := c.service.Leaderboard(ctx.Context(), sortKey, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success":     true,
		"sorted_by":   res.SortedBy,
		"leaderboard": res.Entries,
	})
}

func (c *leaderboardController) GlobalStats(ctx *fiber.Ctx) error {
	res, err := c.service.GlobalStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"stats":   res,
	})
}
