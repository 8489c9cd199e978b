package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(
		response.Fail(fmt.Sprintf("%s %s not found", c.Method(), c.Path())),
	)
}
