package repository

import (
	"context"

	"github.com/meetcal/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	ListByHost(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error)
	ListByHostAndDay(ctx context.Context, hostID uint, dayOfWeek int) ([]models.AvailabilityWindow, error)
	ReplaceAll(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) ListByHost(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("day_of_week ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityRepository) ListByHostAndDay(ctx context.Context, hostID uint, dayOfWeek int) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := r.db.WithContext(ctx).
		Where("host_id = ? AND day_of_week = ?", hostID, dayOfWeek).
		Order("start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

// ReplaceAll swaps the host's whole weekly schedule in one transaction, so a
// crash mid-operation cannot leave a mixture of old and new windows.
func (r *availabilityRepository) ReplaceAll(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("host_id = ?", hostID).Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		for i := range windows {
			windows[i].HostID = hostID
		}
		return tx.Create(&windows).Error
	})
}
