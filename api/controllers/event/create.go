package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	body := new(payload.CreateEventPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, "Title, date, location and participants are required.")
	}

	date, dateErr := parseEventDate(body.Date)
	if dateErr != nil {
		return response.SendFailed(c, "Invalid date format. Use an ISO 8601 date.")
	}

	file, fileErr := c.FormFile("thumbnail")
	if fileErr != nil {
		return response.SendFailed(c, "Thumbnail image is required.")
	}

	thumbnailURL, uploadErr := util.UploadFile(c.Context(), "events", file)
	if uploadErr != nil {
		slog.Error("Event Create thumbnail upload", "error", uploadErr)
		return response.SendInternalError(c, uploadErr)
	}

	event := &model.Event{
		Title:        body.Title,
		Description:  body.Description,
		Date:         date,
		Location:     body.Location,
		Participants: body.Participants,
		Thumbnail:    thumbnailURL,
	}

	if image, imageErr := c.FormFile("image"); imageErr == nil {
		url, imgUploadErr := util.UploadFile(c.Context(), "events", image)
		if imgUploadErr != nil {
			slog.Error("Event Create image upload", "error", imgUploadErr)
			return response.SendInternalError(c, imgUploadErr)
		}
		event.Image = &url
	}

	created, createErr := ctrl.eventRepo.Create(event)
	if createErr != nil {
		return response.SendInternalError(c, createErr)
	}

	slog.Info("Event created", "event_id", created.ID, "slug", created.Slug)
	return response.SendCreated(c, "Event created successfully.", created)
}
