package event

import (
	"romantic-api/core/database"
	"romantic-api/core/middleware"
	"romantic-api/modules/event/controller"
	"romantic-api/modules/event/repository"
	"romantic-api/modules/event/router"
	"romantic-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) repository.EventRepository {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(e, mw)

	// The repository is shared with the reminder scheduler for candidate scans.
	return repo
}
