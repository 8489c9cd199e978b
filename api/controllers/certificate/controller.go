package certificate_controller

import (
	"fmt"
	"strings"

	certificatemodel "github.com/sinaridesa/sinari-api/api/model/certificateModel"
	eventmodel "github.com/sinaridesa/sinari-api/api/model/eventModel"
	"github.com/sinaridesa/sinari-api/common"
)

// CertificateController handles certificate-related HTTP requests.
//
// Unlike the rest of the platform, these handlers respond with the raw JSON
// shapes ({error}, {valid, certificate}, bare records) that the public
// verification consumers already depend on, not the {status,message,data}
// envelope.
type CertificateController struct {
	certRepo  certificatemodel.ICertificateRepository
	eventRepo eventmodel.IEventRepository
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(certRepo certificatemodel.ICertificateRepository, eventRepo eventmodel.IEventRepository) *CertificateController {
	return &CertificateController{
		certRepo:  certRepo,
		eventRepo: eventRepo,
	}
}

// verifyURL builds the public verification link encoded into QR codes and
// mails.
func verifyURL(hash string) string {
	return fmt.Sprintf("%s/certificates/verify/%s", strings.TrimRight(*common.Config.VerifyHost, "/"), hash)
}
