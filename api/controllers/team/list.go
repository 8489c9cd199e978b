package team_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *TeamController) List(c *fiber.Ctx) error {
	query := new(payload.TeamListQuery)
	if err := c.QueryParser(query); err != nil {
		return response.SendFailed(c, "Invalid query parameters.")
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}

	members, total, err := ctrl.teamRepo.List(query.Page, query.Limit, query.Search)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return response.SendSuccess(c, "Team members retrieved successfully.", &payload.PagedTeams{
		Items:      members,
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	})
}
