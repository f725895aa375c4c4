package controller

import (
	"leafit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type actionController struct {
	service service.IActionService
}

func NewActionController(svc service.IActionService) IActionController {
	return &actionController{service: svc}
}

func (c *actionController) RegisterRoutes(r fiber.Router) {
	r.Get("/actions", c.List)
}

func (c *actionController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListActive(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"actions": res.Actions,
	})
}
