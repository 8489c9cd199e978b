package course_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/api/middleware"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
	"github.com/sinaridesa/sinari-api/type/shared/model"
)

func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	userId, _, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "Unauthorized: Missing or invalid token.")
	}

	body := new(payload.CreateCoursePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, "Title and uploader are required.")
	}

	// The author must still exist; tokens can outlive accounts.
	author, userErr := ctrl.userRepo.GetById(userId)
	if userErr != nil {
		return response.SendInternalError(c, userErr)
	}
	if author == nil {
		return response.SendUnauthorized(c, "Unauthorized: User not found.")
	}

	course := &model.Course{
		Title:       body.Title,
		Uploader:    body.Uploader,
		Description: body.Description,
		AuthorID:    userId,
	}

	if file, fileErr := c.FormFile("coursePdf"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "courses", file)
		if uploadErr != nil {
			slog.Error("Course Create pdf upload", "error", uploadErr)
			return response.SendInternalError(c, uploadErr)
		}
		course.FilePath = &url
	}

	if file, fileErr := c.FormFile("thumbnail"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "courses", file)
		if uploadErr != nil {
			slog.Error("Course Create thumbnail upload", "error", uploadErr)
			return response.SendInternalError(c, uploadErr)
		}
		course.Thumbnail = &url
	}

	created, createErr := ctrl.courseRepo.Create(course)
	if createErr != nil {
		return response.SendInternalError(c, createErr)
	}

	slog.Info("Course created", "course_id", created.ID, "slug", created.Slug, "author_id", userId)
	return response.SendCreated(c, "Course created successfully.", created)
}
