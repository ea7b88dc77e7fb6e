package repository

import (
	"context"
	"database/sql"
	"time"

	"romantic-api/core/database"
	"romantic-api/core/logger"
	"romantic-api/modules/photo/entity"

	"github.com/google/uuid"
)

type PhotoRepository interface {
	List(ctx context.Context) ([]entity.Photo, error)
	Find(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	Create(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type photoRepository struct {
	db database.IDatabase
}

func NewPhotoRepository(db database.IDatabase) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) List(ctx context.Context) ([]entity.Photo, error) {
	var photos []entity.Photo
	query := `
		SELECT id, title, description, taken_at, file_name, created_at
		FROM photos ORDER BY datetime(created_at) DESC
	`
	if err := r.db.SelectContext(ctx, &photos, query); err != nil {
		logger.Error("PhotoRepository:List:Error", "error", err)
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) Find(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	var photo entity.Photo
	query := `
		SELECT id, title, description, taken_at, file_name, created_at
		FROM photos WHERE id = ?
	`
	err := r.db.GetContext(ctx, &photo, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PhotoRepository:Find:Error", "error", err)
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photo.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	query := `
		INSERT INTO photos (id, title, description, taken_at, file_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	err := r.db.ExecContext(ctx, query,
		photo.ID, photo.Title, photo.Description, photo.TakenAt, photo.FileName, photo.CreatedAt)
	if err != nil {
		logger.Error("PhotoRepository:Create:Error", "error", err)
	}
	return err
}

func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		logger.Error("PhotoRepository:Delete:Error", "error", err)
	}
	return err
}
