package routes

import (
	"github.com/gofiber/fiber/v2"
	event_controller "github.com/sinaridesa/sinari-api/api/controllers/event"
	"github.com/sinaridesa/sinari-api/api/middleware"
)

// SetupEventRoutes mounts event endpoints. Reads are public; mutations are
// restricted to administrators.
func SetupEventRoutes(router fiber.Router, ctrl *event_controller.EventController) {
	eventGroup := router.Group("events")

	eventGroup.Get("", ctrl.GetAll)
	eventGroup.Get(":id", ctrl.GetById)

	adminGroup := eventGroup.Group("", middleware.Jwt(), middleware.RequireAdmin())

	adminGroup.Post("", ctrl.Create)
	adminGroup.Put(":id", ctrl.Update)
	adminGroup.Delete(":id", ctrl.Delete)
}
