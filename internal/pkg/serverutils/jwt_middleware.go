package serverutils

import (
	"leafit-be/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// JwtMiddleware guards bearer-authenticated routes. Invalid and expired
// tokens are both unauthenticated; the distinction stays inside pkg/token.
func JwtMiddleware(issuer *token.Issuer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return Unauthenticated(ctx)
		}
		tokenStr := authHeader[7:]

		claims, err := issuer.ValidateAccess(tokenStr)
		if err != nil {
			return Unauthenticated(ctx)
		}

		ctx.Locals("user_id", claims.UserId.String())
		ctx.Locals("email", claims.Email)
		return ctx.Next()
	}
}

// Unauthenticated writes the uniform 401 body used by every guarded route.
func Unauthenticated(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "Authentication required",
	})
}
