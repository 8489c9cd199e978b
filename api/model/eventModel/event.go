package eventmodel

import (
	"errors"
	"log/slog"

	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts the event with a slug derived from its title. The store's
// unique constraint is the source of truth for slug ownership: a duplicate-key
// failure on insert is the normal signal to retry with the next numeric
// suffix, so concurrent creates with the same title cannot race past each
// other.
func (r *EventRepository) Create(event *model.Event) (*model.Event, error) {
	base := util.Slugify(event.Title)
	if base == "" {
		base = "event"
	}

	slug := base
	for attempt := 2; ; attempt++ {
		event.Slug = slug

		createErr := r.db.Create(event).Error
		if createErr == nil {
			return event, nil
		}

		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			slug = util.SlugWithSuffix(base, attempt)
			continue
		}

		slog.Error("Event Create", "error", createErr, "title", event.Title)
		return nil, createErr
	}
}

func (r *EventRepository) GetAll() ([]*model.Event, error) {
	var events []*model.Event

	if queryErr := r.db.Order("date DESC").Find(&events).Error; queryErr != nil {
		slog.Error("Event GetAll", "error", queryErr)
		return nil, queryErr
	}

	return events, nil
}

func (r *EventRepository) GetById(id int32) (*model.Event, error) {
	event := new(model.Event)

	queryErr := r.db.Where("id = ?", id).First(event).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetById", "error", queryErr, "event_id", id)
		return nil, queryErr
	}

	return event, nil
}

func (r *EventRepository) Update(id int32, updates map[string]any) (*model.Event, error) {
	event := new(model.Event)

	queryErr := r.db.Where("id = ?", id).First(event).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		slog.Error("Event Update find", "error", queryErr, "event_id", id)
		return nil, queryErr
	}

	if len(updates) == 0 {
		return event, nil
	}

	if updateErr := r.db.Model(event).Updates(updates).Error; updateErr != nil {
		slog.Error("Event Update", "error", updateErr, "event_id", id)
		return nil, updateErr
	}

	updated := new(model.Event)
	if fetchErr := r.db.Where("id = ?", id).First(updated).Error; fetchErr != nil {
		slog.Error("Event Update fetch", "error", fetchErr, "event_id", id)
		return nil, fetchErr
	}

	return updated, nil
}

// Delete removes the event only. Certificates hold a weak reference and are
// deliberately left in place.
func (r *EventRepository) Delete(id int32) error {
	event := new(model.Event)

	queryErr := r.db.Where("id = ?", id).First(event).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		slog.Error("Event Delete find", "error", queryErr, "event_id", id)
		return queryErr
	}

	if deleteErr := r.db.Delete(event).Error; deleteErr != nil {
		slog.Error("Event Delete", "error", deleteErr, "event_id", id)
		return deleteErr
	}

	return nil
}
