package reminder

import (
	"romantic-api/core/config"
	"romantic-api/core/database"
	"romantic-api/core/middleware"
	"romantic-api/modules/reminder/channel"
	"romantic-api/modules/reminder/controller"
	"romantic-api/modules/reminder/repository"
	"romantic-api/modules/reminder/router"
	"romantic-api/modules/reminder/service"

	"github.com/jmhodges/clock"
	"github.com/labstack/echo/v4"
)

// Init wires the reminder log endpoints and builds the scheduler. The caller
// owns the scheduler lifecycle (Start on boot, Stop on shutdown).
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config, events service.EventSource) *service.Scheduler {
	repo := repository.NewReminderLogRepository(db)
	svc := service.NewReminderService(repo)
	ctrl := controller.NewReminderController(svc)

	router.NewReminderRouter(ctrl).Setup(e, mw)

	registry := channel.NewRegistry(
		channel.NewEmailChannel(cfg.SMTP),
		channel.NewPushChannel(),
	)

	return service.NewScheduler(events, repo, registry, clock.New(), cfg.Reminder.Recipient)
}
