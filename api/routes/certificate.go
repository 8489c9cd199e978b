package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sinaridesa/sinari-api/api/controllers/certificate"
	"github.com/sinaridesa/sinari-api/api/middleware"
)

// SetupCertificateRoutes mounts the certificate registry. The whole surface,
// verification included, sits behind the service API key; everything except
// verification additionally requires a bearer token, and mutations require
// the ADMIN role.
func SetupCertificateRoutes(router fiber.Router, ctrl *certificate_controller.CertificateController) {
	certificateGroup := router.Group("certificates")

	certificateGroup.Use(middleware.ApiKey())

	certificateGroup.Get("verify/:hash", ctrl.Verify)

	authGroup := certificateGroup.Group("", middleware.Jwt())

	authGroup.Get("", ctrl.GetAll)
	authGroup.Get("search", ctrl.Search)
	authGroup.Get(":id", ctrl.GetById)

	adminGroup := authGroup.Group("", middleware.RequireAdmin())

	adminGroup.Post("", ctrl.Create)
	adminGroup.Post("batch", ctrl.CreateBatch)
	adminGroup.Put(":id", ctrl.Update)
	adminGroup.Patch(":id/revoke", ctrl.Revoke)
	adminGroup.Delete(":id", ctrl.Delete)
	adminGroup.Get(":id/pdf", ctrl.DownloadPdf)
	adminGroup.Post(":id/send", ctrl.SendMail)
}
