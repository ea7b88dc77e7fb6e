package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"romantic-api/core/constants"
	"romantic-api/core/errors"
	"romantic-api/core/logger"
	"romantic-api/core/utils"
	"romantic-api/modules/photo/dto"
	"romantic-api/modules/photo/entity"
	"romantic-api/modules/photo/repository"

	"github.com/google/uuid"
)

type PhotoService interface {
	List(ctx context.Context) ([]entity.Photo, *errors.AppError)
	Create(ctx context.Context, meta *dto.PhotoMetadata, file io.Reader, originalName string) (*entity.Photo, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

type photoService struct {
	repo       repository.PhotoRepository
	uploadsDir string
}

func NewPhotoService(repo repository.PhotoRepository, uploadsDir string) PhotoService {
	return &photoService{
		repo:       repo,
		uploadsDir: filepath.Join(uploadsDir, constants.UploadsPhotoSubdir),
	}
}

func (s *photoService) List(ctx context.Context) ([]entity.Photo, *errors.AppError) {
	photos, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list photos", err)
	}
	if photos == nil {
		photos = []entity.Photo{}
	}
	return photos, nil
}

func (s *photoService) Create(ctx context.Context, meta *dto.PhotoMetadata, file io.Reader, originalName string) (*entity.Photo, *errors.AppError) {
	fileName := utils.UploadFileName(meta.Title, filepath.Ext(originalName))

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to prepare uploads directory", err)
	}

	filePath := filepath.Join(s.uploadsDir, fileName)
	dst, err := os.Create(filePath)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store photo file", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		s.removeFile(fileName)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store photo file", err)
	}
	if err := dst.Close(); err != nil {
		s.removeFile(fileName)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store photo file", err)
	}

	photo := &entity.Photo{
		ID:       uuid.New(),
		Title:    meta.Title,
		FileName: fileName,
	}
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		photo.Description = &desc
	}
	if taken := normalizeTakenAt(meta.TakenAt); taken != "" {
		photo.TakenAt = &taken
	}

	if err := s.repo.Create(ctx, photo); err != nil {
		logger.Error("PhotoService:Create:Error", "error", err)
		// No row references the file; do not leave it behind.
		s.removeFile(fileName)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save photo", err)
	}
	return photo, nil
}

func (s *photoService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	photo, err := s.repo.Find(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up photo", err)
	}
	if photo == nil {
		return errors.NewAppError(errors.ErrNotFound, "photo not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete photo", err)
	}

	s.removeFile(photo.FileName)
	return nil
}

// removeFile deletes a stored photo file. A missing file is fine; the row is
// the source of truth.
func (s *photoService) removeFile(fileName string) {
	if err := os.Remove(filepath.Join(s.uploadsDir, fileName)); err != nil && !os.IsNotExist(err) {
		logger.Error("PhotoService:RemoveFile:Error", "file", fileName, "error", err)
	}
}

// normalizeTakenAt accepts any parseable timestamp and stores it as RFC3339.
// Unparseable input is dropped rather than rejected.
func normalizeTakenAt(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}
