package user_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	usermodel "github.com/sinaridesa/sinari-api/api/model/userModel"
	"github.com/sinaridesa/sinari-api/type/response"
)

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid user ID.")
	}

	if deleteErr := ctrl.userRepo.Delete(int32(id)); deleteErr != nil {
		if errors.Is(deleteErr, usermodel.ErrUserNotFound) {
			return response.SendNotFound(c, "User not found.")
		}
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("User deleted", "user_id", id)
	return response.SendSuccess(c, "User deleted successfully.")
}
