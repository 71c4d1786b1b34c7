package service

import (
	"context"
	"errors"

	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/repository"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("event type with this slug already exists")

type EventTypeService interface {
	CreateEventType(ctx context.Context, eventType *models.EventType) error
	GetActiveBySlug(ctx context.Context, slug string) (*models.EventType, error)
	ListEventTypes(ctx context.Context, hostID uint) ([]models.EventType, error)
	UpdateEventType(ctx context.Context, id uint, update EventTypeUpdate) (*models.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
}

// EventTypeUpdate carries a partial edit; nil fields are left untouched.
type EventTypeUpdate struct {
	Title       *string
	Description *string
	Duration    *int
	Slug        *string
	IsActive    *bool
}

type eventTypeService struct {
	repo repository.EventTypeRepository
}

func NewEventTypeService(repo repository.EventTypeRepository) EventTypeService {
	return &eventTypeService{repo: repo}
}

func (s *eventTypeService) CreateEventType(ctx context.Context, eventType *models.EventType) error {
	if err := s.repo.Create(ctx, eventType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func (s *eventTypeService) GetActiveBySlug(ctx context.Context, slug string) (*models.EventType, error) {
	eventType, err := s.repo.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}
	return eventType, nil
}

func (s *eventTypeService) ListEventTypes(ctx context.Context, hostID uint) ([]models.EventType, error) {
	return s.repo.FindAllByHost(ctx, hostID)
}

// UpdateEventType applies a partial edit. Deactivation hides the event type
// from slot generation and public listing but leaves existing bookings alone.
func (s *eventTypeService) UpdateEventType(ctx context.Context, id uint, update EventTypeUpdate) (*models.EventType, error) {
	eventType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		eventType.Title = *update.Title
	}
	if update.Description != nil {
		eventType.Description = update.Description
	}
	if update.Duration != nil {
		eventType.Duration = *update.Duration
	}
	if update.Slug != nil {
		eventType.Slug = *update.Slug
	}
	if update.IsActive != nil {
		eventType.IsActive = *update.IsActive
	}

	if err := s.repo.Update(ctx, eventType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return eventType, nil
}

func (s *eventTypeService) DeleteEventType(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventTypeNotFound
		}
		return err
	}
	return nil
}
