package event_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *EventController) GetById(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid event ID.")
	}

	event, err := ctrl.eventRepo.GetById(int32(id))
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if event == nil {
		return response.SendNotFound(c, "Event not found.")
	}

	return response.SendSuccess(c, "Event retrieved successfully.", event)
}
