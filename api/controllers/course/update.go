package course_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/api/middleware"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	userId, _, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "Unauthorized: Missing or invalid token.")
	}

	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid course ID.")
	}

	course, findErr := ctrl.courseRepo.GetById(int32(id))
	if findErr != nil {
		return response.SendInternalError(c, findErr)
	}
	if course == nil {
		return response.SendNotFound(c, "Course not found.")
	}

	if course.AuthorID != userId {
		return response.SendForbidden(c, "Forbidden: You can only update your own courses.")
	}

	body := new(payload.UpdateCoursePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	updates := make(map[string]any)
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Uploader != nil {
		updates["uploader"] = *body.Uploader
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}

	if file, fileErr := c.FormFile("thumbnail"); fileErr == nil {
		url, uploadErr := util.UploadFile(c.Context(), "courses", file)
		if uploadErr != nil {
			slog.Error("Course Update thumbnail upload", "error", uploadErr, "course_id", id)
			return response.SendInternalError(c, uploadErr)
		}
		updates["thumbnail"] = url
	}

	updated, updateErr := ctrl.courseRepo.Update(int32(id), updates)
	if updateErr != nil {
		return response.SendInternalError(c, updateErr)
	}

	return response.SendSuccess(c, "Course updated successfully.", updated)
}
