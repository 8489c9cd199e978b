package routes

import (
	"github.com/gofiber/fiber/v2"
	dashboard_controller "github.com/sinaridesa/sinari-api/api/controllers/dashboard"
	"github.com/sinaridesa/sinari-api/api/middleware"
)

func SetupDashboardRoutes(router fiber.Router, ctrl *dashboard_controller.DashboardController) {
	dashboardGroup := router.Group("dashboard", middleware.Jwt(), middleware.RequireAdmin())

	dashboardGroup.Get("stats", ctrl.Stats)
}
