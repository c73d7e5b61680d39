package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/dto"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
)

// AuthMiddleware verifies the bearer token and stores the typed principal in
// Locals. Downstream code reads the principal, never raw claims or any other
// ambient state.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		principal, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}

		ctx.Locals("principal", principal)
		return ctx.Next()
	}
}

func RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		principal, ok := ctx.Locals("principal").(dto.AuthPrincipal)
		if !ok || principal.UserID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "unauthorized",
			})
		}

		for _, role := range roles {
			if principal.Role == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  "error",
			"message": "insufficient role",
		})
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
