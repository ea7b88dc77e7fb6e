package router

import (
	"romantic-api/core/middleware"
	"romantic-api/modules/photo/controller"

	"github.com/labstack/echo/v4"
)

type PhotoRouter struct {
	controller *controller.PhotoController
}

func NewPhotoRouter(controller *controller.PhotoController) *PhotoRouter {
	return &PhotoRouter{controller: controller}
}

func (r *PhotoRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/api/photos", mw.AuthMiddleware())
	group.GET("", r.controller.ListPhotos)
	group.POST("", r.controller.CreatePhoto)
	group.DELETE("/:id", r.controller.DeletePhoto)
}
