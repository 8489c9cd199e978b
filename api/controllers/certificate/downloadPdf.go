package certificate_controller

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/internal/renderer"
)

// DownloadPdf renders the certificate as a PDF with an embedded verification
// QR code.
func (ctrl *CertificateController) DownloadPdf(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid certificate ID"})
	}

	cert, err := ctrl.certRepo.GetById(int32(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch certificate"})
	}
	if cert == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	if cert.Event == nil && cert.EventID != 0 {
		event, eventErr := ctrl.eventRepo.GetById(cert.EventID)
		if eventErr == nil {
			cert.Event = event
		}
	}

	pdfBytes, renderErr := renderer.RenderCertificatePDF(cert, verifyURL(cert.Hash))
	if renderErr != nil {
		slog.Error("Certificate PDF render failed", "cert_id", cert.ID, "error", renderErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render certificate"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, cert.CertificateCode))
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}
