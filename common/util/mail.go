package util

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sinaridesa/sinari-api/common"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// SendVerificationMail mails a certificate holder the public verification link
// with the QR code attached as a PNG.
func SendVerificationMail(to string, holderName string, verifyURL string, qrPNG []byte) error {
	if common.Dialer == nil {
		return fmt.Errorf("mail dialer not initialized")
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Your SINARI Certificate")
	mailer.SetBody("text/html", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your certificate has been issued. Anyone can verify it at the link below
		or by scanning the attached QR code:</p>
		<p><a href="%s">%s</a></p>
		<p>Best regards,<br>SINARI Team</p>
	`, holderName, verifyURL, verifyURL))

	mailer.Attach("verification-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qrPNG)
		return err
	}), gomail.SetHeader(map[string][]string{
		"Content-Type": {"image/png"},
	}))

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("SendVerificationMail failed", "error", err, "to", to)
		return err
	}

	slog.Info("Verification mail sent", "to", to)
	return nil
}
