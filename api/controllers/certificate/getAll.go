package certificate_controller

import (
	"github.com/gofiber/fiber/v2"
)

func (ctrl *CertificateController) GetAll(c *fiber.Ctx) error {
	certs, err := ctrl.certRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch certificates"})
	}

	return c.Status(fiber.StatusOK).JSON(certs)
}
