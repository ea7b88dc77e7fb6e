package router

import (
	"romantic-api/core/middleware"
	"romantic-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/api/events", mw.AuthMiddleware())
	group.GET("", r.controller.ListEvents)
	group.POST("", r.controller.CreateEvent)
	group.PUT("/:id", r.controller.UpdateEvent)
	group.DELETE("/:id", r.controller.DeleteEvent)
}
