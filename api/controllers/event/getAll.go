package event_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	events, err := ctrl.eventRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Events retrieved successfully.", events)
}
