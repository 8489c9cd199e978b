package team_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	teammodel "github.com/sinaridesa/sinari-api/api/model/teamModel"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *TeamController) Update(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid team member ID.")
	}

	body := new(payload.UpdateTeamPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, "Position must be MENTOR or SINARIDESA_TEAM.")
	}

	updates := make(map[string]any)
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Position != nil {
		updates["position"] = *body.Position
	}

	if file, fileErr := c.FormFile("picture"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "team", file)
		if uploadErr != nil {
			slog.Error("Team Update picture upload", "error", uploadErr, "team_id", id)
			return response.SendInternalError(c, uploadErr)
		}
		updates["picture"] = url
	}

	updated, updateErr := ctrl.teamRepo.Update(int32(id), updates, body.Skills)
	if updateErr != nil {
		if errors.Is(updateErr, teammodel.ErrTeamNotFound) {
			return response.SendNotFound(c, "Team member not found.")
		}
		return response.SendInternalError(c, updateErr)
	}

	return response.SendSuccess(c, "Team member updated successfully.", updated)
}
