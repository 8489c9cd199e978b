package routes

import (
	"github.com/gofiber/fiber/v2"
	course_controller "github.com/sinaridesa/sinari-api/api/controllers/course"
	"github.com/sinaridesa/sinari-api/api/middleware"
)

// SetupCourseRoutes mounts course endpoints. Reads are public; mutations need
// a token, and ownership is enforced in the controller.
func SetupCourseRoutes(router fiber.Router, ctrl *course_controller.CourseController) {
	courseGroup := router.Group("courses")

	courseGroup.Get("", ctrl.GetAll)
	courseGroup.Get(":id", ctrl.GetById)

	authGroup := courseGroup.Group("", middleware.Jwt())

	authGroup.Post("", ctrl.Create)
	authGroup.Put(":id", ctrl.Update)
	authGroup.Delete(":id", ctrl.Delete)
}
