package routes

import (
	"github.com/gofiber/fiber/v2"
	user_controller "github.com/sinaridesa/sinari-api/api/controllers/user"
	"github.com/sinaridesa/sinari-api/api/middleware"
)

// SetupUserRoutes mounts user management endpoints. Everything requires a
// token; deletion is admin-only and role changes are enforced in the
// controller.
func SetupUserRoutes(router fiber.Router, ctrl *user_controller.UserController) {
	userGroup := router.Group("users", middleware.Jwt())

	userGroup.Get("", ctrl.GetAll)
	userGroup.Get(":id", ctrl.GetById)
	userGroup.Put(":id", ctrl.Update)
	userGroup.Delete(":id", middleware.RequireAdmin(), ctrl.Delete)
}
