package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// ResponseSuccessWarn is for operations that committed but whose follow-up
// notice delivery failed: still a success, with the warning attached so the
// UI can say so. Never to be confused with an error response.
func ResponseSuccessWarn(ctx *fiber.Ctx, status int, data interface{}, warning string) error {
	if warning == "" {
		return ResponseSuccess(ctx, status, data)
	}
	return ctx.Status(status).JSON(fiber.Map{
		"status":  "success",
		"data":    data,
		"warning": warning,
	})
}
