package controller

import (
	"romantic-api/core/controller"
	"romantic-api/core/errors"
	"romantic-api/modules/project/dto"
	"romantic-api/modules/project/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	service service.ProjectService
	controller.BaseController
}

func NewProjectController(service service.ProjectService) *ProjectController {
	return &ProjectController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListProjects returns the mini-site gallery
// GET /api/projects
func (c *ProjectController) ListProjects(ctx echo.Context) error {
	projects, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, projects, "projects retrieved")
}

// CreateProject adds a project to the gallery
// POST /api/projects
func (c *ProjectController) CreateProject(ctx echo.Context) error {
	req := new(dto.ProjectRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	project, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, project, "project created")
}

// UpdateProject replaces a project
// PUT /api/projects/:id
func (c *ProjectController) UpdateProject(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid project id")
	}

	req := new(dto.ProjectRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	project, appErr := c.service.Update(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, project, "project updated")
}

// DeleteProject removes a project
// DELETE /api/projects/:id
func (c *ProjectController) DeleteProject(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid project id")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContentResponse(ctx)
}
