package user_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *UserController) GetById(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid user ID.")
	}

	user, err := ctrl.userRepo.GetById(int32(id))
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if user == nil {
		return response.SendNotFound(c, "User not found.")
	}

	return response.SendSuccess(c, "User retrieved successfully.", user)
}
