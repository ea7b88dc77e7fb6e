package service

import (
	"context"
	"database/sql"
	"time"

	"romantic-api/core/errors"
	"romantic-api/core/logger"
	"romantic-api/modules/event/dto"
	"romantic-api/modules/event/entity"
	"romantic-api/modules/event/repository"

	"github.com/google/uuid"
)

type EventService interface {
	List(ctx context.Context) ([]dto.EventResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

// checkPayload enforces the rules the struct tags cannot express: RFC3339
// timestamps, end after start, and a reminder that still fits before the
// event begins. The fit check is skipped when the stored event already
// carries the same start and reminder, so editing other fields of an event
// whose reminder window has opened stays possible.
func checkPayload(req *dto.EventRequest, now time.Time, existing *entity.CalendarEvent) *errors.AppError {
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "start must be an RFC3339 timestamp", err)
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "end must be an RFC3339 timestamp", err)
	}
	if !end.After(start) {
		return errors.NewAppError(errors.ErrInvalidInput, "end must be after start", nil)
	}

	if req.Reminder != nil && reminderChanged(req, existing) {
		lead := time.Duration(req.Reminder.MinutesBefore) * time.Minute
		// start came out of a second-precision RFC3339 string; compare now at
		// the same precision so an exactly-fitting lead stays valid.
		if start.Sub(now.Truncate(time.Second)) < lead {
			return errors.NewAppError(errors.ErrInvalidInput,
				"the reminder lead time no longer fits before the event starts", nil)
		}
	}

	return nil
}

// reminderChanged reports whether the request alters the reminder schedule
// relative to the stored event.
func reminderChanged(req *dto.EventRequest, existing *entity.CalendarEvent) bool {
	if existing == nil {
		return true
	}
	if req.Start != existing.Start || !existing.HasReminder() {
		return true
	}
	return existing.ReminderMethod.String != req.Reminder.Method ||
		existing.ReminderMinutes.Int64 != int64(req.Reminder.MinutesBefore)
}

func toEntity(req *dto.EventRequest, id uuid.UUID) *entity.CalendarEvent {
	event := &entity.CalendarEvent{
		ID:    id,
		Title: req.Title,
		Start: req.Start,
		End:   req.End,
		Notes: req.Notes,
		Tag:   req.Tag,
	}
	if req.Reminder != nil {
		event.ReminderMethod = sql.NullString{String: req.Reminder.Method, Valid: true}
		event.ReminderMinutes = sql.NullInt64{Int64: int64(req.Reminder.MinutesBefore), Valid: true}
	}
	return event
}

func toResponse(event *entity.CalendarEvent) dto.EventResponse {
	resp := dto.EventResponse{
		ID:    event.ID.String(),
		Title: event.Title,
		Start: event.Start,
		End:   event.End,
		Notes: event.Notes,
		Tag:   event.Tag,
	}
	if event.HasReminder() {
		resp.Reminder = &dto.ReminderPayload{
			Method:        event.ReminderMethod.String,
			MinutesBefore: int(event.ReminderMinutes.Int64),
		}
	}
	return resp
}

func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list events", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, toResponse(&events[i]))
	}
	return responses, nil
}

func (s *eventService) Create(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	if appErr := checkPayload(req, time.Now(), nil); appErr != nil {
		return nil, appErr
	}

	event := toEntity(req, uuid.New())
	if err := s.repo.Create(ctx, event); err != nil {
		logger.Error("EventService:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create event", err)
	}

	resp := toResponse(event)
	return &resp, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	existing, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up event", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	if appErr := checkPayload(req, time.Now(), existing); appErr != nil {
		return nil, appErr
	}

	event := toEntity(req, id)
	event.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, event); err != nil {
		logger.Error("EventService:Update:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update event", err)
	}

	resp := toResponse(event)
	return &resp, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	existing, err := s.repo.Find(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up event", err)
	}
	if existing == nil {
		return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error("EventService:Delete:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete event", err)
	}
	return nil
}
