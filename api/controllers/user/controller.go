package user_controller

import (
	usermodel "github.com/sinaridesa/sinari-api/api/model/userModel"
)

// UserController handles user management HTTP requests
type UserController struct {
	userRepo usermodel.IUserRepository
}

// NewUserController creates a new user controller with injected dependencies
func NewUserController(userRepo usermodel.IUserRepository) *UserController {
	return &UserController{
		userRepo: userRepo,
	}
}
