package renderer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/sinaridesa/sinari-api/type/shared/model"
	"github.com/skip2/go-qrcode"
)

// VerifyQR encodes the public verification URL as a PNG QR code.
func VerifyQR(verifyURL string) ([]byte, error) {
	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification QR: %w", err)
	}
	return png, nil
}

// RenderCertificatePDF produces a landscape A4 certificate carrying the holder
// name, event context, the human-readable code and a scannable verification QR.
func RenderCertificatePDF(cert *model.Certificate, verifyURL string) ([]byte, error) {
	qrPNG, qrErr := VerifyQR(verifyURL)
	if qrErr != nil {
		return nil, qrErr
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("SINARI Certificate", false)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.8)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")

	pdf.SetY(45)
	pdf.SetFont("Helvetica", "B", 32)
	pdf.CellFormat(0, 14, "Certificate of Participation", "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "This certificate is proudly presented to", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.CellFormat(0, 12, cert.Name, "", 1, "C", false, 0, "")

	if cert.Event != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 14)
		pdf.CellFormat(0, 8, fmt.Sprintf("for participating in %s", cert.Event.Title), "", 1, "C", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Courier", "", 12)
	pdf.CellFormat(0, 6, cert.CertificateCode, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued on %s", cert.IssuedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("verify-qr", opt, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verify-qr", pageW-48, pageH-48, 30, 30, false, opt, 0, "")

	pdf.SetXY(0, pageH-16)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Verify authenticity at %s", verifyURL), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if outErr := pdf.Output(&buf); outErr != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", outErr)
	}

	return buf.Bytes(), nil
}
