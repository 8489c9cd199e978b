package user_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	users, err := ctrl.userRepo.GetAll()
	if err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Users retrieved successfully.", users)
}
