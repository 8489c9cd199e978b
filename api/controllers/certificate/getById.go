package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func (ctrl *CertificateController) GetById(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	cert, err := ctrl.certRepo.GetById(int32(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch certificate"})
	}

	if cert == nil {
		slog.Warn("Getting non-existing certificate", "cert_id", id)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	return c.Status(fiber.StatusOK).JSON(cert)
}
