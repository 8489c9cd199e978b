package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
)

func (ctrl *CertificateController) Create(c *fiber.Ctx) error {
	body := new(payload.CreateCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse body"})
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errors[0]})
	}

	newCert, createErr := ctrl.certRepo.Create(*body)
	if createErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create certificate"})
	}

	slog.Info("Certificate created", "cert_id", newCert.ID, "code", newCert.CertificateCode)
	return c.Status(fiber.StatusCreated).JSON(newCert)
}
