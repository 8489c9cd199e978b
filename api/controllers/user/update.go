package user_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sinaridesa/sinari-api/api/middleware"
	usermodel "github.com/sinaridesa/sinari-api/api/model/userModel"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/payload"
	"github.com/sinaridesa/sinari-api/type/response"
	"github.com/sinaridesa/sinari-api/type/shared"
)

func (ctrl *UserController) Update(c *fiber.Ctx) error {
	requesterId, requesterRole, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "Unauthorized: Missing or invalid token.")
	}

	id, paramErr := c.ParamsInt("id")
	if paramErr != nil {
		return response.SendFailed(c, "Invalid user ID.")
	}

	isAdmin := requesterRole == shared.RoleAdmin
	if int32(id) != requesterId && !isAdmin {
		return response.SendForbidden(c, "Forbidden: You can only update your own profile.")
	}

	body := new(payload.UpdateUserPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse request body.")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, "Invalid email or role value.")
	}

	updates := make(map[string]any)
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Role != nil {
		if !isAdmin {
			return response.SendForbidden(c, "Forbidden: Only administrators can change roles.")
		}
		updates["role"] = *body.Role
	}

	updated, updateErr := ctrl.userRepo.Update(int32(id), updates)
	if updateErr != nil {
		if errors.Is(updateErr, usermodel.ErrUserNotFound) {
			return response.SendNotFound(c, "User not found.")
		}
		return response.SendInternalError(c, updateErr)
	}

	slog.Info("User updated", "user_id", id, "by", requesterId)
	return response.SendSuccess(c, "User updated successfully.", updated)
}
