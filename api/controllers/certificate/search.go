package certificate_controller

import (
	"github.com/gofiber/fiber/v2"
)

func (ctrl *CertificateController) Search(c *fiber.Ctx) error {
	query := c.Query("query")

	certs, err := ctrl.certRepo.Search(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search certificates"})
	}

	return c.Status(fiber.StatusOK).JSON(certs)
}
