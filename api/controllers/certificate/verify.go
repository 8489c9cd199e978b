package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Verify is the public hash lookup behind QR codes and shared links. The
// three outcomes are deliberately distinct: a revoked certificate legitimately
// existed and must never be reported as absent.
func (ctrl *CertificateController) Verify(c *fiber.Ctx) error {
	hash := c.Params("hash")

	cert, err := ctrl.certRepo.GetByHash(hash)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify certificate"})
	}

	if cert == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"valid": false,
			"error": "Certificate not found",
		})
	}

	if cert.Revoked {
		slog.Info("Verification of revoked certificate", "cert_id", cert.ID, "code", cert.CertificateCode)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Certificate has been revoked"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid":       true,
		"certificate": cert,
	})
}
