package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	certificate_controller "github.com/sinaridesa/sinari-api/api/controllers/certificate"
	course_controller "github.com/sinaridesa/sinari-api/api/controllers/course"
	dashboard_controller "github.com/sinaridesa/sinari-api/api/controllers/dashboard"
	event_controller "github.com/sinaridesa/sinari-api/api/controllers/event"
	team_controller "github.com/sinaridesa/sinari-api/api/controllers/team"
	user_controller "github.com/sinaridesa/sinari-api/api/controllers/user"
	"github.com/sinaridesa/sinari-api/api/handler"
	"github.com/sinaridesa/sinari-api/api/middleware"
	certificatemodel "github.com/sinaridesa/sinari-api/api/model/certificateModel"
	coursemodel "github.com/sinaridesa/sinari-api/api/model/courseModel"
	dashboardmodel "github.com/sinaridesa/sinari-api/api/model/dashboardModel"
	eventmodel "github.com/sinaridesa/sinari-api/api/model/eventModel"
	teammodel "github.com/sinaridesa/sinari-api/api/model/teamModel"
	usermodel "github.com/sinaridesa/sinari-api/api/model/userModel"
	"github.com/sinaridesa/sinari-api/api/routes"
	"github.com/sinaridesa/sinari-api/common"
	"github.com/sinaridesa/sinari-api/common/util"
	"gorm.io/gorm"
)

func InitFiber(db *gorm.DB) {
	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}
	util.InitDialer()

	cfg := fiber.Config{
		AppName:       "sinari api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	certificateRepo := certificatemodel.NewCertificateRepository(db)
	courseRepo := coursemodel.NewCourseRepository(db)
	eventRepo := eventmodel.NewEventRepository(db)
	teamRepo := teammodel.NewTeamRepository(db)
	userRepo := usermodel.NewUserRepository(db)
	dashboardRepo := dashboardmodel.NewDashboardRepository(db)

	routes.Init(app, &routes.Controllers{
		Certificate: certificate_controller.NewCertificateController(certificateRepo, eventRepo),
		Course:      course_controller.NewCourseController(courseRepo, userRepo),
		Event:       event_controller.NewEventController(eventRepo),
		Team:        team_controller.NewTeamController(teamRepo),
		User:        user_controller.NewUserController(userRepo),
		Dashboard:   dashboard_controller.NewDashboardController(dashboardRepo),
	})

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
