package controller

import (
	"strconv"

	"romantic-api/core/controller"
	"romantic-api/modules/reminder/service"

	"github.com/labstack/echo/v4"
)

type ReminderController struct {
	service service.ReminderService
	controller.BaseController
}

func NewReminderController(service service.ReminderService) *ReminderController {
	return &ReminderController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetLog returns the latest dispatch attempts, newest first
// GET /api/reminders/log?limit=100
func (c *ReminderController) GetLog(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	entries, appErr := c.service.GetRecentLog(ctx.Request().Context(), limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, entries, "reminder log retrieved")
}
