package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// create a generic response function for success
func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseValidation reports per-field failures with 422.
func ResponseValidation(ctx *fiber.Ctx, fields map[string]string) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}

// ResponseRedirectHint tells the client where to go instead, e.g. onboarding.
func ResponseRedirectHint(ctx *fiber.Ctx, status int, msg, redirect string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error":    msg,
		"redirect": redirect,
	})
}
