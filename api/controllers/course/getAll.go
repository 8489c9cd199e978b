package course_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *CourseController) GetAll(c *fiber.Ctx) error {
	courses, err := ctrl.courseRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Courses retrieved successfully.", courses)
}
