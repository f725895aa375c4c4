package controller

import (
	"errors"

	"leafit-be/internal/dto"
	"leafit-be/internal/pkg/serverutils"
	"leafit-be/internal/service"
	"leafit-be/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	UpdateMe(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	issuer  *token.Issuer
}

func NewAuthController(svc service.IAuthService, issuer *token.Issuer) IAuthController {
	return &authController{service: svc, issuer: issuer}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Post("/refresh", c.Refresh)

	guarded := h.Use(serverutils.JwtMiddleware(c.issuer))
	guarded.Get("/me", c.Me)
	guarded.Put("/me", c.UpdateMe)
	guarded.Post("/change-password", c.ChangePassword)
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	return uuid.Parse(raw)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return validationFailed(ctx, map[string]string{"email": err.Error()})
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	// Unknown tokens revoke to zero rows, still a success.
	if err := c.service.Logout(ctx.Context(), req.RefreshToken); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	res, err := c.service.Refresh(ctx.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	profile, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"user":    profile,
	})
}

func (c *authController) UpdateMe(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	profile, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"user":    profile,
	})
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return serverutils.Unauthenticated(ctx)
	}

	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if fields := serverutils.ValidateRequest(&req); fields != nil {
		return validationFailed(ctx, fields)
	}

	if err := c.service.ChangePassword(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return badRequest(ctx, err.Error())
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}

func badRequest(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

func validationFailed(ctx *fiber.Ctx, fields map[string]string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"errors":  fields,
	})
}
