package project

import (
	"romantic-api/core/database"
	"romantic-api/modules/project/controller"
	"romantic-api/modules/project/repository"
	"romantic-api/modules/project/router"
	"romantic-api/modules/project/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewProjectRepository(db)
	svc := service.NewProjectService(repo)
	ctrl := controller.NewProjectController(svc)

	router.NewProjectRouter(ctrl).Setup(e)
}
