package team_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	teammodel "github.com/sinaridesa/sinari-api/api/model/teamModel"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *TeamController) Delete(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid team member ID.")
	}

	if deleteErr := ctrl.teamRepo.Delete(int32(id)); deleteErr != nil {
		if errors.Is(deleteErr, teammodel.ErrTeamNotFound) {
			return response.SendNotFound(c, "Team member not found.")
		}
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("Team member deleted", "team_id", id)
	return response.SendSuccess(c, "Team member deleted successfully.")
}
