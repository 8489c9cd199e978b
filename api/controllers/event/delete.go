package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid event ID.")
	}

	existing, findErr := ctrl.eventRepo.GetById(int32(id))
	if findErr != nil {
		return response.SendInternalError(c, findErr)
	}
	if existing == nil {
		return response.SendNotFound(c, "Event not found.")
	}

	if deleteErr := ctrl.eventRepo.Delete(int32(id)); deleteErr != nil {
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("Event deleted", "event_id", id)
	return response.SendSuccess(c, "Event deleted successfully.")
}
