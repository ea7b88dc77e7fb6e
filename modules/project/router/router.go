package router

import (
	"romantic-api/modules/project/controller"

	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	controller *controller.ProjectController
}

func NewProjectRouter(controller *controller.ProjectController) *ProjectRouter {
	return &ProjectRouter{controller: controller}
}

// Setup registers the gallery routes. They are public: the showcase is
// readable and editable without a session, as in the original deployment.
func (r *ProjectRouter) Setup(e *echo.Echo) {
	group := e.Group("/api/projects")
	group.GET("", r.controller.ListProjects)
	group.POST("", r.controller.CreateProject)
	group.PUT("/:id", r.controller.UpdateProject)
	group.DELETE("/:id", r.controller.DeleteProject)
}
