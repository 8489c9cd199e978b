package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
)

func (ctrl *CertificateController) CreateBatch(c *fiber.Ctx) error {
	body := new(payload.CreateBatchCertificatesPayload)

	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse body"})
	}

	if err := util.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": `Invalid request body. "names" must be a non-empty array.`,
		})
	}

	certs, createErr := ctrl.certRepo.CreateBatch(body.Names, body.EventID)
	if createErr != nil {
		// The transaction already rolled back: no partial batch exists.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create certificates in batch."})
	}

	slog.Info("Certificate batch created", "count", len(certs), "event_id", body.EventID)
	return c.Status(fiber.StatusCreated).JSON(certs)
}
