package controller

import (
	"romantic-api/core/controller"
	"romantic-api/core/errors"
	"romantic-api/modules/event/dto"
	"romantic-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service service.EventService
	controller.BaseController
}

func NewEventController(service service.EventService) *EventController {
	return &EventController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListEvents returns all calendar events ordered by start time
// GET /api/events
func (c *EventController) ListEvents(ctx echo.Context) error {
	events, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, events, "events retrieved")
}

// CreateEvent creates a calendar event
// POST /api/events
func (c *EventController) CreateEvent(ctx echo.Context) error {
	req := new(dto.EventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	event, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, event, "event created")
}

// UpdateEvent replaces a calendar event
// PUT /api/events/:id
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}

	req := new(dto.EventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	event, appErr := c.service.Update(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, event, "event updated")
}

// DeleteEvent removes a calendar event and its reminder history
// DELETE /api/events/:id
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContentResponse(ctx)
}
