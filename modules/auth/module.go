package auth

import (
	"romantic-api/core/database"
	"romantic-api/core/middleware"
	"romantic-api/modules/auth/controller"
	"romantic-api/modules/auth/repository"
	"romantic-api/modules/auth/router"
	"romantic-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.AuthService {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)

	return svc
}
