package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *EventController) Update(c *fiber.Ctx) error {
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

	body := new(payload.UpdateEventPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	updates := make(map[string]any)
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Date != nil {
		date, dateErr := parseEventDate(*body.Date)
		if dateErr != nil {
			return response.SendFailed(c, "Invalid date format. Use an ISO 8601 date.")
		}
		updates["date"] = date
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.Participants != nil {
		updates["participants"] = *body.Participants
	}

	if file, fileErr := c.FormFile("thumbnail"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "events", file)
		if uploadErr != nil {
			slog.Error("Event Update thumbnail upload", "error", uploadErr, "event_id", id)
			return response.SendInternalError(c, uploadErr)
		}
		updates["thumbnail"] = url
	}

	if file, fileErr := c.FormFile("image"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "events", file)
		if uploadErr != nil {
			slog.Error("Event Update image upload", "error", uploadErr, "event_id", id)
			return response.SendInternalError(c, uploadErr)
		}
		updates["image"] = url
	}

	updated, updateErr := ctrl.eventRepo.Update(int32(id), updates)
	if updateErr != nil {
		return response.SendInternalError(c, updateErr)
	}

	return response.SendSuccess(c, "Event updated successfully.", updated)
}
