package repository

import (
	"context"
	"database/sql"
	"time"

	"romantic-api/core/database"
	"romantic-api/core/logger"
	"romantic-api/modules/project/entity"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]entity.Project, error)
	Find(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db database.IDatabase
}

func NewProjectRepository(db database.IDatabase) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	query := `
		SELECT id, title, description, url, thumbnail_url, created_at, updated_at
		FROM projects ORDER BY datetime(created_at) DESC
	`
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		logger.Error("ProjectRepository:List:Error", "error", err)
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Find(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	query := `
		SELECT id, title, description, url, thumbnail_url, created_at, updated_at
		FROM projects WHERE id = ?
	`
	err := r.db.GetContext(ctx, &project, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProjectRepository:Find:Error", "error", err)
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	now := time.Now().UTC().Format(time.RFC3339)
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT INTO projects (id, title, description, url, thumbnail_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	err := r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Description, project.URL,
		project.ThumbnailURL, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		logger.Error("ProjectRepository:Create:Error", "error", err)
	}
	return err
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	query := `
		UPDATE projects SET title = ?, description = ?, url = ?, thumbnail_url = ?, updated_at = ?
		WHERE id = ?
	`
	err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.URL, project.ThumbnailURL,
		project.UpdatedAt, project.ID)
	if err != nil {
		logger.Error("ProjectRepository:Update:Error", "error", err)
	}
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		logger.Error("ProjectRepository:Delete:Error", "error", err)
	}
	return err
}
