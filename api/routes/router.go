package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sinaridesa/sinari-api/api/controllers/certificate"
	course_controller "github.com/sinaridesa/sinari-api/api/controllers/course"
	dashboard_controller "github.com/sinaridesa/sinari-api/api/controllers/dashboard"
	event_controller "github.com/sinaridesa/sinari-api/api/controllers/event"
	team_controller "github.com/sinaridesa/sinari-api/api/controllers/team"
	user_controller "github.com/sinaridesa/sinari-api/api/controllers/user"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Certificate *certificate_controller.CertificateController
	Course      *course_controller.CourseController
	Event       *event_controller.EventController
	Team        *team_controller.TeamController
	User        *user_controller.UserController
	Dashboard   *dashboard_controller.DashboardController
}

func Init(router fiber.Router, ctrls *Controllers) {
	api := router.Group("api")

	SetupCertificateRoutes(api, ctrls.Certificate)
	SetupCourseRoutes(api, ctrls.Course)
	SetupEventRoutes(api, ctrls.Event)
	SetupTeamRoutes(api, ctrls.Team)
	SetupUserRoutes(api, ctrls.User)
	SetupDashboardRoutes(api, ctrls.Dashboard)
}
