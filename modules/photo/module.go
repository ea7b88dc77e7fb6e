package photo

import (
	"romantic-api/core/database"
	"romantic-api/core/middleware"
	"romantic-api/modules/photo/controller"
	"romantic-api/modules/photo/repository"
	"romantic-api/modules/photo/router"
	"romantic-api/modules/photo/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, uploadsDir string) {
	repo := repository.NewPhotoRepository(db)
	svc := service.NewPhotoService(repo, uploadsDir)
	ctrl := controller.NewPhotoController(svc)

	router.NewPhotoRouter(ctrl).Setup(e, mw)
}
