package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"keepnote/internal/config"
	"keepnote/internal/constant"
	"keepnote/internal/controller"
	"keepnote/internal/metrics"
	"keepnote/internal/pkg/serverutils"
	"keepnote/internal/service"
)

// New builds the fiber app and mounts the controllers of every service
// enabled in cfg.
func New(cfg config.Config, repos *Repositories, publisherService service.IPublisherService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "keepnote",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New())
	app.Use(serverutils.RequestLogger())
	app.Use(cors.New())
	app.Use(metrics.Handler())
	app.Use(serverutils.ErrorHandlerMiddleware())

	logger := log.NewEntry(log.StandardLogger())
	checks := make(map[string]controller.Pinger)

	if cfg.Enabled(constant.ResourceNote) {
		noteService := service.NewNoteService(repos.Note, publisherService, logger)
		controller.NewNoteController(noteService).RegisterRoutes(app)
		checks[constant.ResourceNote] = repos.Note
	}
	if cfg.Enabled(constant.ResourceReminder) {
		reminderService := service.NewReminderService(repos.Reminder, publisherService, logger)
		controller.NewReminderController(reminderService).RegisterRoutes(app)
		checks[constant.ResourceReminder] = repos.Reminder
	}
	if cfg.Enabled(constant.ResourceUser) {
		userService := service.NewUserService(repos.User, publisherService, logger)
		controller.NewUserController(userService).RegisterRoutes(app)
		checks[constant.ResourceUser] = repos.User
	}

	controller.NewHealthController(checks).RegisterRoutes(app)
	app.Get("/metrics", metrics.Exposer())

	return app
}
