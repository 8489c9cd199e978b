package routes

import (
	"github.com/gofiber/fiber/v2"
	team_controller "github.com/sinaridesa/sinari-api/api/controllers/team"
	"github.com/sinaridesa/sinari-api/api/middleware"
)

// SetupTeamRoutes mounts team member endpoints. Reads are public; mutations
// are restricted to administrators.
func SetupTeamRoutes(router fiber.Router, ctrl *team_controller.TeamController) {
	teamGroup := router.Group("team")

	teamGroup.Get("", ctrl.List)
	teamGroup.Get(":id", ctrl.GetById)

	adminGroup := teamGroup.Group("", middleware.Jwt(), middleware.RequireAdmin())

	adminGroup.Post("", ctrl.Create)
	adminGroup.Put(":id", ctrl.Update)
	adminGroup.Delete(":id", ctrl.Delete)
}
