package certificate_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	certificatemodel "github.com/sinaridesa/sinari-api/api/model/certificateModel"
)

func (ctrl *CertificateController) Delete(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	cert, deleteErr := ctrl.certRepo.Delete(int32(id))
	if deleteErr != nil {
		if errors.Is(deleteErr, certificatemodel.ErrCertificateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to delete certificate"})
	}

	slog.Info("Certificate deleted", "cert_id", cert.ID, "code", cert.CertificateCode)
	return c.SendStatus(fiber.StatusNoContent)
}
