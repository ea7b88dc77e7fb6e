package router

import (
	"romantic-api/core/middleware"
	"romantic-api/modules/reminder/controller"

	"github.com/labstack/echo/v4"
)

type ReminderRouter struct {
	controller *controller.ReminderController
}

func NewReminderRouter(controller *controller.ReminderController) *ReminderRouter {
	return &ReminderRouter{controller: controller}
}

func (r *ReminderRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/api/reminders", mw.AuthMiddleware())
	group.GET("/log", r.controller.GetLog)
}
