package controller

import (
	"romantic-api/core/controller"
	"romantic-api/core/errors"
	"romantic-api/core/middleware"
	"romantic-api/modules/auth/dto"
	"romantic-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthService
	controller.BaseController
}

func NewAuthController(service service.AuthService) *AuthController {
	return &AuthController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Login authenticates with email/password and returns a session token
// POST /api/auth/login
func (c *AuthController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	result, appErr := c.service.Login(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "logged in")
}

// Profile returns the authenticated user's identity
// GET /api/auth/profile
func (c *AuthController) Profile(ctx echo.Context) error {
	tokenData, ok := middleware.UserFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "not authenticated")
	}

	return c.SuccessResponse(ctx, dto.ProfileResponse{
		ID:    tokenData.UserID.String(),
		Email: tokenData.Email,
	}, "profile retrieved")
}
