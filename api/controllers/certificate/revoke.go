package certificate_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	certificatemodel "github.com/sinaridesa/sinari-api/api/model/certificateModel"
)

// Revoke performs the one-way invalidation transition. A second revoke on the
// same certificate fails explicitly so callers can tell a repeat from a first
// transition.
func (ctrl *CertificateController) Revoke(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	cert, revokeErr := ctrl.certRepo.Revoke(int32(id))
	if revokeErr != nil {
		switch {
		case errors.Is(revokeErr, certificatemodel.ErrCertificateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
		case errors.Is(revokeErr, certificatemodel.ErrAlreadyRevoked):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Certificate has already been revoked"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke certificate"})
		}
	}

	slog.Info("Certificate revoked", "cert_id", cert.ID, "code", cert.CertificateCode)
	return c.Status(fiber.StatusOK).JSON(cert)
}
