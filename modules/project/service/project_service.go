package service

import (
	"context"
	"strings"

	"romantic-api/core/errors"
	"romantic-api/core/logger"
	"romantic-api/modules/project/dto"
	"romantic-api/modules/project/entity"
	"romantic-api/modules/project/repository"

	"github.com/google/uuid"
)

type ProjectService interface {
	List(ctx context.Context) ([]entity.Project, *errors.AppError)
	Create(ctx context.Context, req *dto.ProjectRequest) (*entity.Project, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.ProjectRequest) (*entity.Project, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func toEntity(req *dto.ProjectRequest, id uuid.UUID) *entity.Project {
	project := &entity.Project{
		ID:    id,
		Title: strings.TrimSpace(req.Title),
		URL:   strings.TrimSpace(req.URL),
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		project.Description = &desc
	}
	if thumb := strings.TrimSpace(req.ThumbnailURL); thumb != "" {
		project.ThumbnailURL = &thumb
	}
	return project
}

func (s *projectService) List(ctx context.Context) ([]entity.Project, *errors.AppError) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list projects", err)
	}
	if projects == nil {
		projects = []entity.Project{}
	}
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, req *dto.ProjectRequest) (*entity.Project, *errors.AppError) {
	project := toEntity(req, uuid.New())
	if err := s.repo.Create(ctx, project); err != nil {
		logger.Error("ProjectService:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create project", err)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *dto.ProjectRequest) (*entity.Project, *errors.AppError) {
	existing, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up project", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "project not found", nil)
	}

	project := toEntity(req, id)
	project.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, project); err != nil {
		logger.Error("ProjectService:Update:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update project", err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	existing, err := s.repo.Find(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up project", err)
	}
	if existing == nil {
		return errors.NewAppError(errors.ErrNotFound, "project not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error("ProjectService:Delete:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete project", err)
	}
	return nil
}
