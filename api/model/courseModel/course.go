package coursemodel

import (
	"errors"
	"log/slog"

	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func authorFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// Create inserts the course with a slug derived from its title, treating a
// duplicate-key failure as the retry-with-next-suffix signal. Same policy as
// events.
func (r *CourseRepository) Create(course *model.Course) (*model.Course, error) {
	base := util.Slugify(course.Title)
	if base == "" {
		base = "course"
	}

	slug := base
	for attempt := 2; ; attempt++ {
		course.Slug = slug

		createErr := r.db.Create(course).Error
		if createErr == nil {
			return course, nil
		}

		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			slug = util.SlugWithSuffix(base, attempt)
			continue
		}

		slog.Error("Course Create", "error", createErr, "title", course.Title)
		return nil, createErr
	}
}

func (r *CourseRepository) GetAll() ([]*model.Course, error) {
	var courses []*model.Course

	queryErr := r.db.Preload("Author", authorFields).Order("created_at DESC").Find(&courses).Error
	if queryErr != nil {
		slog.Error("Course GetAll", "error", queryErr)
		return nil, queryErr
	}

	return courses, nil
}

func (r *CourseRepository) GetById(id int32) (*model.Course, error) {
	course := new(model.Course)

	queryErr := r.db.Preload("Author", authorFields).Where("id = ?", id).First(course).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Course GetById", "error", queryErr, "course_id", id)
		return nil, queryErr
	}

	return course, nil
}

func (r *CourseRepository) Update(id int32, updates map[string]any) (*model.Course, error) {
	course := new(model.Course)

	queryErr := r.db.Where("id = ?", id).First(course).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		slog.Error("Course Update find", "error", queryErr, "course_id", id)
		return nil, queryErr
	}

	if len(updates) > 0 {
		if updateErr := r.db.Model(course).Updates(updates).Error; updateErr != nil {
			slog.Error("Course Update", "error", updateErr, "course_id", id)
			return nil, updateErr
		}
	}

	updated := new(model.Course)
	if fetchErr := r.db.Preload("Author", authorFields).Where("id = ?", id).First(updated).Error; fetchErr != nil {
		slog.Error("Course Update fetch", "error", fetchErr, "course_id", id)
		return nil, fetchErr
	}

	return updated, nil
}

func (r *CourseRepository) Delete(id int32) error {
	course := new(model.Course)

	queryErr := r.db.Where("id = ?", id).First(course).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		slog.Error("Course Delete find", "error", queryErr, "course_id", id)
		return queryErr
	}

	if deleteErr := r.db.Delete(course).Error; deleteErr != nil {
		slog.Error("Course Delete", "error", deleteErr, "course_id", id)
		return deleteErr
	}

	return nil
}
