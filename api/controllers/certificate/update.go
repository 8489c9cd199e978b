package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/payload"
)

// Update applies a partial update. A revoked value in the body is written
// as-is, without the already-revoked guard the Revoke endpoint enforces; the
// legacy admin surface depends on that behavior.
func (ctrl *CertificateController) Update(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	body := new(payload.UpdateCertificatePayload)
	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse body"})
	}

	updated, updateErr := ctrl.certRepo.Update(int32(id), *body)
	if updateErr != nil {
		slog.Warn("Certificate update failed", "cert_id", id, "error", updateErr)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update certificate"})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
