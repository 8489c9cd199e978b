package gorm

import (
	"errors"
	"log/slog"
	"os"

	"github.com/sinaridesa/sinari-api/common"
	"github.com/sinaridesa/sinari-api/common/util"
	"github.com/sinaridesa/sinari-api/type/shared"
	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

// Seed upserts the bootstrap admin account. Credentials come from config so
// they never end up in the repository.
func Seed(db *gorm.DB) {
	if common.Config.AdminEmail == nil || common.Config.AdminPassword == nil {
		slog.Error("Seed requires admin_email and admin_password in config.yml")
		os.Exit(1)
	}

	hashed, hashErr := util.HashPassword(*common.Config.AdminPassword)
	if hashErr != nil {
		slog.Error("Failed to hash admin password", "error", hashErr)
		os.Exit(1)
	}

	var existing model.User
	findErr := db.Where("email = ?", *common.Config.AdminEmail).First(&existing).Error

	if findErr == nil {
		slog.Info("Admin user already exists", "email", existing.Email)
		return
	}

	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		slog.Error("Failed to look up admin user", "error", findErr)
		os.Exit(1)
	}

	admin := &model.User{
		Email:    *common.Config.AdminEmail,
		Name:     "Admin",
		Password: hashed,
		Role:     shared.RoleAdmin,
	}

	if createErr := db.Create(admin).Error; createErr != nil {
		slog.Error("Failed to create admin user", "error", createErr)
		os.Exit(1)
	}

	slog.Info("Created admin user", "email", admin.Email)
}
