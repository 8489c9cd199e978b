package event_controller

import (
	"time"

	eventmodel "github.com/sinaridesa/sinari-api/api/model/eventModel"
)

// EventController handles event-related HTTP requests
type EventController struct {
	eventRepo eventmodel.IEventRepository
}

// NewEventController creates a new event controller with injected dependencies
func NewEventController(eventRepo eventmodel.IEventRepository) *EventController {
	return &EventController{
		eventRepo: eventRepo,
	}
}

// parseEventDate accepts full RFC 3339 timestamps and bare dates.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
