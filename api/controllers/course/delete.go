package course_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/api/middleware"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
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
		return response.SendForbidden(c, "Forbidden: You can only delete your own courses.")
	}

	if deleteErr := ctrl.courseRepo.Delete(int32(id)); deleteErr != nil {
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("Course deleted", "course_id", id, "author_id", userId)
	return response.SendSuccess(c, "Course deleted successfully.")
}
