package course_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *CourseController) GetById(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid course ID.")
	}

	course, err := ctrl.courseRepo.GetById(int32(id))
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if course == nil {
		return response.SendNotFound(c, "Course not found.")
	}

	return response.SendSuccess(c, "Course retrieved successfully.", course)
}
