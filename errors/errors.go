package errors

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message})
}

func RaisePermissionsError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusUnauthorized, message)
}

func RaiseInternalServerError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusInternalServerError, message)
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message)
}
