package service

import (
	"context"

	"romantic-api/core/constants"
	"romantic-api/core/errors"
	"romantic-api/modules/reminder/entity"
	"romantic-api/modules/reminder/repository"
)

type ReminderService interface {
	GetRecentLog(ctx context.Context, limit int) ([]entity.ReminderLog, *errors.AppError)
}

type reminderService struct {
	repo repository.ReminderLogRepository
}

func NewReminderService(repo repository.ReminderLogRepository) ReminderService {
	return &reminderService{repo: repo}
}

func (s *reminderService) GetRecentLog(ctx context.Context, limit int) ([]entity.ReminderLog, *errors.AppError) {
	if limit <= 0 || limit > constants.ReminderLogDefaultSize {
		limit = constants.ReminderLogDefaultSize
	}

	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to read reminder log", err)
	}
	if entries == nil {
		entries = []entity.ReminderLog{}
	}
	return entries, nil
}
