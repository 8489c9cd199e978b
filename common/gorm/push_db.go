package gorm

import (
	"log/slog"
	"os"

	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

func PushDB(db *gorm.DB) {
	if err := db.AutoMigrate(
		new(model.User),
		new(model.Event),
		new(model.Course),
		new(model.Team),
		new(model.Skill),
		new(model.Certificate),
	); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed successfully")
}
