package router

import (
	"romantic-api/core/middleware"
	"romantic-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/api/auth")
	group.POST("/login", r.controller.Login)
	group.GET("/profile", r.controller.Profile, mw.AuthMiddleware())
}
