package repository

import (
	"context"

	"github.com/meetcal/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type EventTypeRepository interface {
	Create(ctx context.Context, eventType *models.EventType) error
	FindByID(ctx context.Context, id uint) (*models.EventType, error)
	FindActiveBySlug(ctx context.Context, slug string) (*models.EventType, error)
	FindAllByHost(ctx context.Context, hostID uint) ([]models.EventType, error)
	Update(ctx context.Context, eventType *models.EventType) error
	Delete(ctx context.Context, id uint) error
}

type eventTypeRepository struct {
	db *gorm.DB
}

func NewEventTypeRepository(db *gorm.DB) EventTypeRepository {
	return &eventTypeRepository{db: db}
}

func (r *eventTypeRepository) Create(ctx context.Context, eventType *models.EventType) error {
	return r.db.WithContext(ctx).Create(eventType).Error
}

func (r *eventTypeRepository) FindByID(ctx context.Context, id uint) (*models.EventType, error) {
	var eventType models.EventType
	if err := r.db.WithContext(ctx).First(&eventType, id).Error; err != nil {
		return nil, err
	}
	return &eventType, nil
}

func (r *eventTypeRepository) FindActiveBySlug(ctx context.Context, slug string) (*models.EventType, error) {
	var eventType models.EventType
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&eventType).Error
	if err != nil {
		return nil, err
	}
	return &eventType, nil
}

func (r *eventTypeRepository) FindAllByHost(ctx context.Context, hostID uint) ([]models.EventType, error) {
	var eventTypes []models.EventType
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&eventTypes).Error
	if err != nil {
		return nil, err
	}
	return eventTypes, nil
}

func (r *eventTypeRepository) Update(ctx context.Context, eventType *models.EventType) error {
	return r.db.WithContext(ctx).Save(eventType).Error
}

func (r *eventTypeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EventType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
