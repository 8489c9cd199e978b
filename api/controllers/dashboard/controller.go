package dashboard_controller

import (
	"github.com/gofiber/fiber/v2"
	dashboardmodel "github.com/sinaridesa/sinari-api/api/model/dashboardModel"
	"github.com/sinaridesa/sinari-api/type/response"
)

// DashboardController serves aggregate platform statistics
type DashboardController struct {
	dashboardRepo dashboardmodel.IDashboardRepository
}

// NewDashboardController creates a new dashboard controller with injected dependencies
func NewDashboardController(dashboardRepo dashboardmodel.IDashboardRepository) *DashboardController {
	return &DashboardController{
		dashboardRepo: dashboardRepo,
	}
}

func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	stats, err := ctrl.dashboardRepo.Stats()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Dashboard statistics retrieved successfully.", stats)
}
