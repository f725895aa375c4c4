package controller

import (
	"context"
	"time"

	"leafit-be/internal/dto"
	"leafit-be/internal/pkg/serverutils"
	"leafit-be/internal/service"
	"leafit-be/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// chatTimeout bounds the whole provider chain, two providers with
// three attempts each fit comfortably.
const chatTimeout = 25 * time.Second

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	issuer  *token.Issuer
}

func NewChatController(svc service.IChatService, issuer *token.Issuer) IChatController {
	return &chatController{service: svc, issuer: issuer}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", serverutils.JwtMiddleware(c.issuer), c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Context(), chatTimeout)
	defer cancel()

	res, err := c.service.Chat(reqCtx, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
