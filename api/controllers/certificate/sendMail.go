package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/internal/renderer"
	"github.com/sinaridesa/sinari-api/type/payload"
)

// SendMail delivers the verification link and QR code to a holder's email.
func (ctrl *CertificateController) SendMail(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	body := new(payload.SendCertificatePayload)
	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse body"})
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errors[0]})
	}

	cert, err := ctrl.certRepo.GetById(int32(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch certificate"})
	}
	if cert == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	url := verifyURL(cert.Hash)

	qrPNG, qrErr := renderer.VerifyQR(url)
	if qrErr != nil {
		slog.Error("Certificate mail QR generation failed", "cert_id", cert.ID, "error", qrErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate verification QR"})
	}

	if mailErr := util.SendVerificationMail(body.Email, cert.Name, url, qrPNG); mailErr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send certificate mail"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Certificate mail sent"})
}
