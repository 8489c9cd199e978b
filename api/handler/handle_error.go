package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Fail(fiberErr.Message),
		)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error("An internal server error occurred.", err),
	)
}
