package team_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
	"github.com/sinaridesa/sinari-api/type/shared"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

func (ctrl *TeamController) Create(c *fiber.Ctx) error {
	body := new(payload.CreateTeamPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, "Name and a valid position (MENTOR or SINARIDESA_TEAM) are required.")
	}

	member := &model.Team{
		Name:     body.Name,
		Position: shared.Position(body.Position),
	}

	if file, fileErr := c.FormFile("picture"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "team", file)
		if uploadErr != nil {
			slog.Error("Team Create picture upload", "error", uploadErr)
			return response.SendInternalError(c, uploadErr)
		}
		member.Picture = &url
	}

	created, createErr := ctrl.teamRepo.Create(member, body.Skills)
	if createErr != nil {
		return response.SendInternalError(c, createErr)
	}

	slog.Info("Team member created", "team_id", created.ID, "position", created.Position)
	return response.SendCreated(c, "Team member created successfully.", created)
}
