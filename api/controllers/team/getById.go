package team_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *TeamController) GetById(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid team member ID.")
	}

	member, err := ctrl.teamRepo.GetById(int32(id))
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if member == nil {
		return response.SendNotFound(c, "Team member not found.")
	}

	return response.SendSuccess(c, "Team member retrieved successfully.", member)
}
