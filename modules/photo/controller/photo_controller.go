package controller

import (
	"romantic-api/core/controller"
	"romantic-api/core/errors"
	"romantic-api/modules/photo/dto"
	"romantic-api/modules/photo/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PhotoController struct {
	service service.PhotoService
	controller.BaseController
}

func NewPhotoController(service service.PhotoService) *PhotoController {
	return &PhotoController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListPhotos returns the album, newest first
// GET /api/photos
func (c *PhotoController) ListPhotos(ctx echo.Context) error {
	photos, appErr := c.service.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, photos, "photos retrieved")
}

// CreatePhoto stores an uploaded image with its metadata
// POST /api/photos (multipart: file + title/description/takenAt)
func (c *PhotoController) CreatePhoto(ctx echo.Context) error {
	meta := new(dto.PhotoMetadata)
	if err := ctx.Bind(meta); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid form data")
	}
	if err := ctx.Validate(meta); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "an image file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "failed to read upload")
	}
	defer src.Close()

	photo, appErr := c.service.Create(ctx.Request().Context(), meta, src, fileHeader.Filename)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, photo, "photo created")
}

// DeletePhoto removes a photo row and its file on disk
// DELETE /api/photos/:id
func (c *PhotoController) DeletePhoto(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid photo id")
	}

	if appErr := c.service.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContentResponse(ctx)
}
